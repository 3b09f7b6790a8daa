package server

import (
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/hbjs97/actions/internal/settings"
)

const writeWait = 10 * time.Second

// client는 연결된 settings editor 하나다. 쓰기는 mu로 직렬화한다.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) send(msgs ...settings.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, m := range msgs {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteJSON(m); err != nil {
			return err
		}
	}
	return nil
}

// checkOrigin은 같은 host이거나 AllowedOrigins에 있는 origin만 upgrade를 허용한다.
// "scheme://*" 형태는 그 scheme 전체와 일치한다.
func (s *Server) checkOrigin(r *http.Request) bool {
	if sameHostOrigin(r) {
		return true
	}
	origin := r.Header.Get("Origin")
	for _, allowed := range s.cfg.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
		if prefix, ok := strings.CutSuffix(allowed, "*"); ok && strings.HasPrefix(origin, prefix) {
			return true
		}
	}
	return false
}

// sameHostOrigin은 브라우저가 아닌 클라이언트(Origin 없음)와 같은 host의 페이지만 허용한다.
func sameHostOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return u.Host == r.Host
}

// serveWS는 WebSocket 위에서 settings 프로토콜을 처리한다.
// 연결 직후 actionsLoaded를 보낸다.
func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn().Err(err).Msg("websocket upgrade 실패")
		return
	}
	c := &client{conn: conn}
	s.addClient(c)
	defer func() {
		s.removeClient(c)
		conn.Close()
	}()

	if err := c.send(s.editor.Open()); err != nil {
		return
	}
	for {
		var req settings.Message
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug().Err(err).Msg("websocket 연결 종료")
			}
			return
		}
		if err := c.send(s.editor.Handle(req)...); err != nil {
			s.logger.Debug().Err(err).Msg("websocket 쓰기 실패")
			return
		}
	}
}

func (s *Server) addClient(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[c] = struct{}{}
}

func (s *Server) removeClient(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.clients, c)
}

func (s *Server) closeClients() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		c.conn.Close()
	}
}

// Broadcast는 연결된 모든 editor에 메시지를 보낸다. 설정 파일이 바뀌었을 때 쓴다.
func (s *Server) Broadcast(msgs ...settings.Message) {
	s.mu.Lock()
	clients := make([]*client, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()

	for _, c := range clients {
		if err := c.send(msgs...); err != nil {
			s.logger.Debug().Err(err).Msg("broadcast 실패")
		}
	}
}

// Clients는 연결된 editor 수다.
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}
