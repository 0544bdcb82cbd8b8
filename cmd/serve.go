package cmd

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"pipeflow/server"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func newServeCommand() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the websocket front end",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				cfg.Addr = addr
			}
			upgrader.CheckOrigin = func(r *http.Request) bool {
				return true
			}
			return server.NewServer(cfg, upgrader).Serve()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to the config value)")
	return cmd
}
