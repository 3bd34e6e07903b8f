package cli

import (
	"fmt"
	"os"

	"github.com/avnit77/recipes/config"
	"github.com/avnit77/recipes/pkg/storage/sqlstore"
	colorable "github.com/mattn/go-colorable"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type MigrateHandler struct {
	c *config.Config
}

func newMigrateHandler(c *config.Config) *MigrateHandler {
	return &MigrateHandler{c: c}
}

func getDatabaseURL(cmd *cobra.Command, args []string, position int) (url string) {
	if len(args) <= position {
		fmt.Println(cmd.UsageString())
		return
	}
	url = args[position]

	if url == "" {
		fmt.Println(cmd.UsageString())
		return
	}
	return
}

// migrationDriver picks the --driver flag, then the configured driver.
func (h *MigrateHandler) migrationDriver(cmd *cobra.Command) string {
	if f := cmd.Flags().Lookup("driver"); f != nil && f.Changed {
		return f.Value.String()
	}
	if h.c.DatabaseDriver == "postgres" || h.c.DatabaseDriver == "sqlite3" {
		return h.c.DatabaseDriver
	}
	return "postgres"
}

func (h *MigrateHandler) MigrateSQL(cmd *cobra.Command, args []string) {
	url := getDatabaseURL(cmd, args, 0)
	if url == "" {
		os.Exit(2) // Return missing keyword or command
	}

	log.SetLevel(log.DebugLevel)
	log.SetFormatter(&log.TextFormatter{
		ForceColors: true,
	})
	log.SetOutput(colorable.NewColorableStdout())

	driver := h.migrationDriver(cmd)
	log.WithField("driver", driver).Info("Applying SQL migration...")

	db, err := sqlstore.Open(driver, url)
	if err != nil {
		log.Errorf("An error occurred while connecting to SQL: %s", err)
		os.Exit(1)
	}
	defer db.Close()

	n, err := sqlstore.Migrate(db)
	if err != nil {
		log.Errorf("An error occurred while running the migrations: %s", err)
		os.Exit(1)
	}
	log.Infof("Migration successful! Applied a total of %d migrations.", n)
}
