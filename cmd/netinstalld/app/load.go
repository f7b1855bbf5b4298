package app

import (
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/installkit/netinstall/internal/config"
	"github.com/installkit/netinstall/internal/ingest"
	"github.com/installkit/netinstall/internal/model"
	"github.com/installkit/netinstall/internal/store"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the configured group document once and print the groups",
	Long: `Perform a single load attempt from the module configuration file and
print the resulting group records as YAML. Exits non-zero when the
attempt ends in a failure status.`,
	RunE: runLoad,
}

func init() {
	loadCmd.Flags().String("config", "", "Path to module configuration file (YAML format, required)")
	loadCmd.Flags().Duration("timeout", 60*time.Second, "How long to wait for the load to settle")

	if err := loadCmd.MarkFlagRequired("config"); err != nil {
		panic(fmt.Sprintf("failed to mark config flag as required: %v", err))
	}
}

// loadWaiter forwards notifications to the model and signals once the
// attempt settles: readiness, or a non-empty failure description.
type loadWaiter struct {
	*model.Model

	once sync.Once
	done chan struct{}
}

func newLoadWaiter(m *model.Model) *loadWaiter {
	return &loadWaiter{
		Model: m,
		done:  make(chan struct{}),
	}
}

func (w *loadWaiter) StatusChanged(description string) {
	w.Model.StatusChanged(description)
	if description != "" {
		w.settle()
	}
}

func (w *loadWaiter) Ready() {
	w.Model.Ready()
	w.settle()
}

func (w *loadWaiter) settle() {
	w.once.Do(func() { close(w.done) })
}

func runLoad(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	timeout, err := cmd.Flags().GetDuration("timeout")
	if err != nil {
		return err
	}

	configurationMap, err := config.LoadRawFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	groupModel := model.New()
	waiter := newLoadWaiter(groupModel)
	loader := ingest.New(groupModel, store.NewMemStore(), waiter)
	defer loader.Close()

	loader.Configure(ctx, configurationMap)

	select {
	case <-waiter.done:
	case <-time.After(timeout):
		return fmt.Errorf("load did not settle within %s", timeout)
	case <-ctx.Done():
		return ctx.Err()
	}

	snap := groupModel.Snapshot()
	if !snap.Ready {
		return fmt.Errorf("load failed: %s", snap.StatusDescription)
	}

	out, err := yaml.Marshal(map[string]any{"groups": snap.Records})
	if err != nil {
		return fmt.Errorf("failed to render groups: %w", err)
	}
	cmd.Print(string(out))
	return nil
}
