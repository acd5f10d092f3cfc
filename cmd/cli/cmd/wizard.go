package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pcbuild/core/output"
	"pcbuild/core/session"
	"pcbuild/core/ui"
	"pcbuild/internal/config"
	"pcbuild/internal/logging"
)

var (
	wizBudget  int
	wizBrand   string
	wizGame    string
	wizChoices []string
)

// wizardCmd walks the selection steps non-interactively
var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Walk the build wizard: budget, CPU brand, game, then swap parts",
	Long: `Run the build wizard from flags.

Each answer unlocks the next step. Leaving the game step generates the
build; --choose then swaps single parts, and parts that no longer fit the
new choice are cleared.

Examples:
  pcbuild wizard --budget 15 --brand intel --game valorant
  pcbuild wizard -b 15 --brand intel -g valorant --choose cpu=13400f`,
	Args: cobra.NoArgs,
	RunE: runWizard,
}

func init() {
	wizardCmd.Flags().IntVarP(&wizBudget, "budget", "b", 0, "budget in millions")
	wizardCmd.Flags().StringVar(&wizBrand, "brand", "", "CPU brand (intel, amd)")
	wizardCmd.Flags().StringVarP(&wizGame, "game", "g", "", "target game")
	wizardCmd.Flags().StringArrayVarP(&wizChoices, "choose", "c", nil, "part to swap in as category=id (repeatable, applied in order)")
	wizardCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
}

func runWizard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.Get()
	formatter, err := formatterFor(cfg, outputFormat)
	if err != nil {
		return err
	}
	// progress goes to stderr so json output stays parseable
	progress := ui.NewWriter(cmd.ErrOrStderr(), noColor)

	gen, c, err := openSource(cfg).generator(ctx, cfg)
	if err != nil {
		return err
	}

	s := session.New()
	log := logging.With(zap.String("session", s.ID()))

	if err := s.SetBudget(wizBudget); err != nil {
		return err
	}
	if err := s.Advance(gen); err != nil {
		return err
	}
	progress.Success("Budget %dM", wizBudget)

	brand, err := parseBrand(wizBrand)
	if err != nil {
		return err
	}
	if err := s.SetBrand(brand); err != nil {
		return err
	}
	if err := s.Advance(gen); err != nil {
		return err
	}
	progress.Success("CPU brand %s", brand)

	if err := s.SetGame(wizGame); err != nil {
		return err
	}
	if err := s.Advance(gen); err != nil {
		return err
	}
	state := s.State()
	progress.Success("Game %s: build generated (%s)", wizGame, state.Source)
	log.Debug("Wizard configured", zap.String("step", state.Step), zap.String("source", string(state.Source)))

	for _, pair := range wizChoices {
		sel, err := parseSelection([]string{pair})
		if err != nil {
			return err
		}
		for category, id := range sel {
			cleared, err := s.Choose(c, category, id)
			if err != nil {
				return err
			}
			progress.Info("Chose %s %s", category, id)
			for _, dropped := range cleared {
				progress.Warning("%s no longer fits and was cleared", dropped)
			}
		}
	}

	req := s.Request()
	report := output.TotalReport(c, s.Selection(), req.Budget)
	report.Request = &req
	report.Source = s.State().Source
	return formatter.RenderReport(cmd.OutOrStdout(), report)
}
