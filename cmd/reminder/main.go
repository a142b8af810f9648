package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kenken729/daily-todo-tracker/pkg/export"
	"github.com/kenken729/daily-todo-tracker/pkg/persist"
	"github.com/kenken729/daily-todo-tracker/pkg/roster"
	"github.com/kenken729/daily-todo-tracker/pkg/seed"
	"github.com/kenken729/daily-todo-tracker/pkg/task"
	"github.com/kenken729/daily-todo-tracker/pkg/task/due"
)

var (
	taskFile string
	seedFile string
)

func main() {
	root := &cobra.Command{
		Use:   "reminder",
		Short: "Daily work reminder board",
		Long:  "A task reminder board: dated tasks per person, due-date urgency, and a shareable text digest.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}
	root.PersistentFlags().StringVar(&taskFile, "file", "./tasks.json", "Path to the task file")
	root.PersistentFlags().StringVar(&seedFile, "seed", "", "Path to a default-task seed file, used when the task file is empty")

	root.AddCommand(exportCmd(), addCmd(), listCmd(), doneCmd(), rmCmd(), clearCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// openStore loads the task collection, seeding it when empty.
func openStore(r roster.Roster, now time.Time) (*task.Store, error) {
	store := task.NewStore(persist.InJSON(taskFile))
	if err := store.Load(); err != nil {
		return nil, err
	}
	if seedFile != "" {
		if err := seed.Populate(store, r, now, seedFile); err != nil {
			return nil, err
		}
	}
	return store, nil
}

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the shareable text digest of everyone's pending tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := roster.Default()
			now := time.Now()
			store, err := openStore(r, now)
			if err != nil {
				return err
			}
			digest := export.Digest(r, store.All(), now)
			if digest != "" {
				fmt.Fprintln(cmd.OutOrStdout(), digest)
			}
			return nil
		},
	}
}

func addCmd() *cobra.Command {
	var (
		title  string
		dueStr string
		owners []string
	)
	cmd := &cobra.Command{
		Use:   "add <content>",
		Short: "Create tasks from content, a due date, and owners",
		Long: "Creates one task per owner and content part. Content splits on the full-width\n" +
			"comma (、); owners may be people or the groups 所有人, 國內組, 海外組.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := roster.Default()
			now := time.Now()
			store, err := openStore(r, now)
			if err != nil {
				return err
			}
			draft := task.Draft{Title: title, Content: args[0], Owners: owners}
			if dueStr != "" {
				dueAt, err := time.ParseInLocation("2006-01-02", dueStr, now.Location())
				if err != nil {
					return fmt.Errorf("invalid due date %q: expected 2006-01-02", dueStr)
				}
				draft.Due = dueAt
			}
			tasks, err := draft.Materialize(r, now)
			if err != nil {
				return err
			}
			if err := store.Add(tasks...); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %d task(s)\n", len(tasks))
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Optional title, shown as 《title》 before each part")
	cmd.Flags().StringVar(&dueStr, "due", "", "Due date (2006-01-02), defaults to today")
	cmd.Flags().StringSliceVar(&owners, "owner", nil, "Owner person or group (may be repeated)")
	return cmd
}

func listCmd() *cobra.Command {
	var completed bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the board grouped by person, with task ids",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := roster.Default()
			now := time.Now()
			store, err := openStore(r, now)
			if err != nil {
				return err
			}
			board := task.PendingByPerson(store.All(), r.People)
			if completed {
				board = task.CompletedByPerson(store.All(), r.People)
			}
			out := cmd.OutOrStdout()
			for _, p := range r.People {
				tasks := board[p]
				if len(tasks) == 0 {
					continue
				}
				fmt.Fprintf(out, "👤 %s\n", p)
				for _, t := range tasks {
					line := fmt.Sprintf("  %s  %s｜%s", shortID(t.ID), t.Content, t.Due.Format("2006-01-02"))
					if u := due.Classify(t.Due, now); !completed && u != due.OnTime {
						line += "（" + u.String() + "）"
					}
					fmt.Fprintln(out, line)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&completed, "completed", false, "List completed tasks instead of pending ones")
	return cmd
}

func doneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completed state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateByID(cmd, args[0], func(store *task.Store, id task.ID) error {
				return store.ToggleComplete(id)
			})
		},
	}
}

func rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateByID(cmd, args[0], func(store *task.Store, id task.ID) error {
				return store.Remove(id)
			})
		},
	}
}

func clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <person>",
		Short: "Remove a person's completed tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := roster.Default()
			store, err := openStore(r, time.Now())
			if err != nil {
				return err
			}
			return store.RemoveCompletedFor(roster.Person(args[0]))
		},
	}
}

func mutateByID(cmd *cobra.Command, prefix string, mutate func(*task.Store, task.ID) error) error {
	r := roster.Default()
	store, err := openStore(r, time.Now())
	if err != nil {
		return err
	}
	id, err := resolveID(store.All(), prefix)
	if err != nil {
		return err
	}
	return mutate(store, id)
}

// resolveID matches an id or unique id prefix, as printed by list.
func resolveID(tasks []task.Task, prefix string) (task.ID, error) {
	matches := []task.ID{}
	for _, t := range tasks {
		if strings.HasPrefix(string(t.ID), prefix) {
			matches = append(matches, t.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no task matches %q", prefix)
	case 1:
		return matches[0], nil
	}
	return "", errors.New("more than one task matches " + prefix)
}

func shortID(id task.ID) string {
	if len(id) < 8 {
		return string(id)
	}
	return string(id[:8])
}
