package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/hbjs97/actions/internal/config"
	"github.com/hbjs97/actions/internal/picker"
	"github.com/hbjs97/actions/internal/server"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func (a *App) newServeCmd() *cobra.Command {
	cfg := server.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "에디터 플러그인용 HTTP/WebSocket 서버를 실행한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.runServe(ctx, cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "listen 주소")
	cmd.Flags().StringSliceVar(&cfg.AllowedOrigins, "allow-origin", nil, "CORS/WebSocket 허용 origin (예: vscode-webview://*)")
	return cmd
}

func (a *App) runServe(ctx context.Context, cfg server.Config) error {
	s, srv, err := a.openServer(cfg)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.store.Watch(ctx, func(c *config.Config) {
			s.registry.Rebuild(c)
			srv.Broadcast(s.editor.Open())
		})
	})
	g.Go(func() error {
		return srv.ListenAndServe(ctx)
	})
	return g.Wait()
}

// openServer는 서버 모드용 session과 Server를 조립한다.
// 서버 터미널에서 선택 UI를 띄우지 않도록 picker는 choice가 없으면 ErrChoiceRequired로 끝난다.
func (a *App) openServer(cfg server.Config) (*session, *server.Server, error) {
	s, err := a.open()
	if err != nil {
		return nil, nil, err
	}
	s.picker.Chooser = picker.NonInteractive{}
	srv := server.New(cfg, s.registry, s.editor, s.logger)

	// 서버 모드의 openSettings는 연결된 editor에 현재 목록을 다시 보낸다
	s.handlers.Settings = func(context.Context) error {
		srv.Broadcast(s.editor.Open())
		return nil
	}
	return s, srv, nil
}
