package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/goaltrack/internal/httpapi"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCmd(a *App) *cobra.Command {
	var (
		addr  string
		quiet bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.Config.HTTPAddr
			}
			gin.SetMode(gin.ReleaseMode)

			deps := httpapi.Deps{
				Goals:         a.Goals,
				Progress:      a.Progress,
				Summaries:     a.Summaries,
				DefaultUserID: a.userID(),
				StreakType:    a.Config.StreakType,
				SuccessMetric: a.Config.SuccessMetric,
			}
			if !quiet {
				deps.AccessLog = cmd.ErrOrStderr()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return httpapi.NewServer(addr, httpapi.NewRouter(deps), a.logger(), a.Config.ShutdownTimeout).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from GOALTRACK_HTTP_ADDR, or :8080)")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Disable the request log")

	return cmd
}
