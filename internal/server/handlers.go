package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hbjs97/actions/internal/action"
	"github.com/hbjs97/actions/internal/executor"
	"github.com/hbjs97/actions/internal/registry"
	"github.com/hbjs97/actions/internal/settings"
)

// ActionsResponse는 GET /api/actions 응답이다.
type ActionsResponse struct {
	Context    action.Context  `json:"context,omitempty"`
	UseSubmenu bool            `json:"useSubmenu"`
	Actions    []action.Action `json:"actions"`
}

// InvokeResponse는 POST /api/commands/{commandID} 응답이다.
type InvokeResponse struct {
	Command string           `json:"command"`
	Result  *executor.Result `json:"result,omitempty"`
	Error   *ErrorDetail     `json:"error,omitempty"`
}

// listActions는 작업 목록을 반환한다. context 쿼리가 있으면 그 picker에 보일 작업만 반환한다.
func (s *Server) listActions(w http.ResponseWriter, r *http.Request) {
	list := s.registry.Actions()
	resp := ActionsResponse{UseSubmenu: s.registry.UseSubmenu()}

	if q := r.URL.Query().Get("context"); q != "" {
		c, err := action.ParseContext(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_CONTEXT", err.Error())
			return
		}
		resp.Context = c
		list = action.Visible(list, c)
	}
	if list == nil {
		list = []action.Action{}
	}
	resp.Actions = list
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) listCommands(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.registry.Commands())
}

func (s *Server) invokeCommand(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "commandID")

	var inv registry.Invocation
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
			return
		}
	}

	res, err := s.registry.Invoke(r.Context(), id, inv)
	if err != nil {
		status, code := errorStatus(err)
		writeJSON(w, status, InvokeResponse{
			Command: id,
			Result:  res,
			Error:   &ErrorDetail{Code: code, Message: err.Error()},
		})
		return
	}
	writeJSON(w, http.StatusOK, InvokeResponse{Command: id, Result: res})
}

// settingsMessage는 settings 요청 하나를 처리하고 응답 메시지 배열을 반환한다.
func (s *Server) settingsMessage(w http.ResponseWriter, r *http.Request) {
	var req settings.Message
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.editor.Handle(req))
}
