// Package cli implements plannerctl, an offline tool that applies board moves
// and renders month grids from YAML files.
package cli

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"myplanner/calendar"
	"myplanner/kanban"
)

// NewRootCmd builds the plannerctl command tree.
func NewRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "plannerctl",
		Short:         "Inspect planner boards and calendars from YAML files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(cmd.ErrOrStderr())
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newBoardCmd(), newCalendarCmd())
	return root
}

func newBoardCmd() *cobra.Command {
	boardCmd := &cobra.Command{
		Use:   "board",
		Short: "Show or rearrange a board",
	}

	var showFile string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the board's columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBoard(showFile)
			if err != nil {
				return err
			}
			renderBoard(cmd.OutOrStdout(), b)
			return nil
		},
	}
	showCmd.Flags().StringVarP(&showFile, "file", "f", "board.yaml", "Board YAML file")

	var (
		moveFile string
		from     string
		to       string
		taskID   string
		write    bool
	)
	moveCmd := &cobra.Command{
		Use:   "move",
		Short: "Move one task, as a drag and drop would",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBoard(moveFile)
			if err != nil {
				return err
			}
			src, err := parseLocation(from)
			if err != nil {
				return err
			}
			if src == nil {
				return fmt.Errorf("--from is required")
			}
			dst, err := parseLocation(to)
			if err != nil {
				return err
			}

			next, err := kanban.ApplyMove(b, kanban.Move{TaskID: taskID, Source: *src, Destination: dst})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if next == b {
				fmt.Fprintln(out, "no change")
				renderBoard(out, b)
				return nil
			}
			log.WithFields(log.Fields{"from": from, "to": to}).Debug("task moved")
			renderBoard(out, next)
			if write {
				if err := saveBoard(moveFile, next); err != nil {
					return err
				}
				fmt.Fprintf(out, "saved %s\n", moveFile)
			}
			return nil
		},
	}
	moveCmd.Flags().StringVarP(&moveFile, "file", "f", "board.yaml", "Board YAML file")
	moveCmd.Flags().StringVar(&from, "from", "", "Source slot as column:index")
	moveCmd.Flags().StringVar(&to, "to", "none", "Destination slot as column:index, or none")
	moveCmd.Flags().StringVar(&taskID, "task", "", "Expected task id at the source slot")
	moveCmd.Flags().BoolVarP(&write, "write", "w", false, "Write the result back to the file")

	boardCmd.AddCommand(showCmd, moveCmd)
	return boardCmd
}

func newCalendarCmd() *cobra.Command {
	var (
		year       int
		month      int
		eventsPath string
		today      string
	)
	now := time.Now()
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print a month grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := loadEvents(eventsPath)
			if err != nil {
				return err
			}
			day := now
			if today != "" {
				if day, err = calendar.ParseDay(today); err != nil {
					return err
				}
			}
			grid, err := calendar.BuildMonthGrid(year, time.Month(month), events, day)
			if err != nil {
				return err
			}
			renderMonth(cmd.OutOrStdout(), grid)
			if len(grid.Skipped) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d event(s) skipped\n", len(grid.Skipped))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", now.Year(), "Year")
	cmd.Flags().IntVar(&month, "month", int(now.Month()), "Month, 1-12")
	cmd.Flags().StringVarP(&eventsPath, "file", "f", "", "Events YAML file")
	cmd.Flags().StringVar(&today, "today", "", "Day to highlight (YYYY-MM-DD), defaults to now")
	return cmd
}
