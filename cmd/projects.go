package cmd

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"ratecard/internal/cli"
	"ratecard/internal/ledger"
	"ratecard/internal/model"

	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List tracked projects",
	RunE:  runProjects,
}

var projectsAddCmd = &cobra.Command{
	Use:   "add <name> <hours>",
	Short: "Add a project priced at the current rate",
	Args:  cobra.ExactArgs(2),
	RunE:  runProjectsAdd,
}

var projectsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsRm,
}

var projectsToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip a project between pending and paid",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsToggle,
}

func init() {
	projectsCmd.AddCommand(projectsAddCmd, projectsRmCmd, projectsToggleCmd)
	rootCmd.AddCommand(projectsCmd)
}

func runProjects(_ *cobra.Command, _ []string) error {
	_, s, st, err := openState()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	cur := st.Inputs.Currency

	fmt.Println()
	fmt.Println(cli.RenderTitle("PROJECTS"))
	fmt.Println()

	if len(st.Ledger.Projects) == 0 {
		fmt.Println("  No projects yet. Add one:")
		fmt.Println("    ratecard projects add \"Logo redesign\" 10")
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(st.Ledger.Projects))
	for _, p := range st.Ledger.Projects {
		rows = append(rows, []string{
			cli.Truncate(p.Name, 24),
			strconv.FormatInt(p.ID, 10),
			cli.FormatHours(p.Hours),
			cli.FormatMoney(p.Price, cur),
			cli.RenderStatus(p.Status == model.StatusPaid),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Project", "ID", "Hours", "Price", "Status"},
		Rows:    rows,
	}))

	pending, paid := ledger.Totals(st.Ledger)
	fmt.Println()
	fmt.Println(cli.RenderKV("Pending", cli.FormatMoney(pending, cur), 8))
	fmt.Println(cli.RenderKV("Paid", cli.FormatMoney(paid, cur), 8))
	fmt.Println()

	return nil
}

func runProjectsAdd(_ *cobra.Command, args []string) error {
	name := args[0]

	// Unparseable hours become NaN so the ledger rejects them with
	// the same validation error the TUI form shows.
	hours, parseErr := strconv.ParseFloat(strings.TrimSpace(args[1]), 64)
	if parseErr != nil {
		hours = math.NaN()
	}

	_, s, st, err := openState()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	newLedger, p, err := ledger.Add(st.Ledger, name, hours, st.HourlyRate)
	if err != nil {
		var verr *ledger.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("project not added: %s", verr.Error())
		}
		return err
	}
	st.Ledger = newLedger

	if err := saveState(s, &st); err != nil {
		return err
	}

	fmt.Printf("  Added %q: %s @ %s = %s (pending)\n",
		p.Name,
		cli.FormatHours(p.Hours),
		cli.FormatRate(st.HourlyRate, st.Inputs.Currency),
		cli.FormatMoney(p.Price, st.Inputs.Currency),
	)
	return nil
}

func runProjectsRm(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid project id %q", args[0])
	}

	_, s, st, err := openState()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	before := len(st.Ledger.Projects)
	st.Ledger = ledger.Delete(st.Ledger, id)
	if len(st.Ledger.Projects) == before {
		fmt.Printf("  No project with id %d.\n", id)
		return nil
	}

	if err := saveState(s, &st); err != nil {
		return err
	}
	fmt.Printf("  Deleted project %d.\n", id)
	return nil
}

func runProjectsToggle(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid project id %q", args[0])
	}

	_, s, st, err := openState()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	st.Ledger = ledger.Toggle(st.Ledger, id)

	var toggled *model.Project
	for i := range st.Ledger.Projects {
		if st.Ledger.Projects[i].ID == id {
			toggled = &st.Ledger.Projects[i]
			break
		}
	}
	if toggled == nil {
		fmt.Printf("  No project with id %d.\n", id)
		return nil
	}

	if err := saveState(s, &st); err != nil {
		return err
	}
	fmt.Printf("  %q is now %s.\n", toggled.Name, toggled.Status)
	return nil
}
