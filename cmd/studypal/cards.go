package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wojakkk/studypal/internal/deck"
)

func newAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <question> <answer>",
		Short: "Add a new card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, repo, err := openDeck()
			if err != nil {
				return err
			}

			card, err := d.Add(args[0], args[1], today())
			if err != nil {
				return err
			}
			if err := repo.Save(d); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "[+] Added card #%d\n", card.ID)
			return nil
		},
	}
}

func newListCommand() *cobra.Command {
	var format string
	command := &cobra.Command{
		Use:   "list",
		Short: "List all cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, _, err := openDeck()
			if err != nil {
				return err
			}

			switch format {
			case "text":
				if len(d.Cards) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No cards yet. Use 'add' to create one.")
					return nil
				}
				for _, c := range d.Cards {
					fmt.Fprintf(cmd.OutOrStdout(), "#%d | due %s | rep %d | ease %.2f\nQ: %s\nA: %s\n\n",
						c.ID, c.Due, c.Repetitions, c.Ease, c.Question, c.Answer)
				}
			case "json":
				out, err := json.MarshalIndent(d, "", "  ")
				if err != nil {
					return fmt.Errorf("json.MarshalIndent > %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
			case "yaml":
				out, err := yaml.Marshal(d)
				if err != nil {
					return fmt.Errorf("yaml.Marshal > %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), string(out))
			default:
				return fmt.Errorf("unsupported format %q: use text, json or yaml", format)
			}
			return nil
		},
	}
	command.Flags().StringVar(&format, "format", "text", "output format (text, json or yaml)")
	return command
}

func newEditCommand() *cobra.Command {
	var question, answer string
	command := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a card by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseCardID(args[0])
			if err != nil {
				return err
			}

			d, repo, err := openDeck()
			if err != nil {
				return err
			}

			if err := d.Edit(id, question, answer); err != nil {
				if errors.Is(err, deck.ErrCardNotFound) {
					fmt.Fprintln(cmd.OutOrStdout(), "Card not found.")
					return nil
				}
				return err
			}
			if err := repo.Save(d); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Edited card #%d.\n", id)
			return nil
		},
	}
	command.Flags().StringVar(&question, "question", "", "new question text")
	command.Flags().StringVar(&answer, "answer", "", "new answer text")
	return command
}

func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a card by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseCardID(args[0])
			if err != nil {
				return err
			}

			d, repo, err := openDeck()
			if err != nil {
				return err
			}

			if err := d.Delete(id); err != nil {
				if errors.Is(err, deck.ErrCardNotFound) {
					fmt.Fprintln(cmd.OutOrStdout(), "Card not found.")
					return nil
				}
				return err
			}
			if err := repo.Save(d); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted card #%d.\n", id)
			return nil
		},
	}
}

func parseCardID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid card id %q", arg)
	}
	return id, nil
}
