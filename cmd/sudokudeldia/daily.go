package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/AliceKyte/sudokuDelDia/internal/domain"
	"github.com/AliceKyte/sudokuDelDia/internal/random"
)

// dailySalt spreads consecutive day numbers across the seed space so that
// neighbouring dates do not share rand stream prefixes.
const dailySalt = 0x9E3779B9

// dailySeed derives a reproducible seed from a calendar date: everyone
// generating the puzzle of the same UTC day gets the same board.
func dailySeed(t time.Time) int64 {
	days := t.UTC().Unix() / 86400
	return (days + 1) * dailySalt
}

func NewDailyCommand() *cobra.Command {
	var (
		date       string
		difficulty string
	)
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Print the puzzle of the day",
		Long:  "daily derives the generation seed from the UTC date, so every run on the same day prints the same puzzle. The difficulty is also derived from the date unless overridden.",
		RunE: func(cmd *cobra.Command, args []string) error {
			day := time.Now().UTC()
			if date != "" {
				var err error
				day, err = time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("parse --date: %w", err)
				}
			}
			seed := dailySeed(day)
			var d domain.Difficulty
			if difficulty == "" {
				d = random.Choose(random.New(seed), domain.Difficulties())
			} else {
				d = domain.ParseDifficulty(difficulty)
			}
			return runGenerate(cmd, seed, d)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date of the puzzle, YYYY-MM-DD (today when unset)")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "easy|medium|hard (derived from the date when unset)")
	return cmd
}
