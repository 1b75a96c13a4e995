package cmd

import (
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/bilalbayram/postcheck/internal/server"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultServeAddr = ":8080"

func NewServeCommand(runtime Runtime) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the validation engine over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			const commandName = "postcheck serve"

			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return writeCommandError(cmd, runtime, commandName, inputErrorf("listen on %s: %w", addr, err))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger := runtime.LoggerWithDefault(cmd, logrus.InfoLevel)
			logger.WithField("addr", ln.Addr().String()).Info("postcheck server listening")
			if err := server.New(logger).Serve(ctx, ln); err != nil {
				return writeCommandError(cmd, runtime, commandName, err)
			}
			logger.Info("postcheck server stopped")
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", defaultServeAddr, "Listen address")
	return cmd
}
