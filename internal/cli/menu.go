package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/streakr/internal/analytics"
	"github.com/julianstephens/streakr/internal/constants"
	"github.com/julianstephens/streakr/internal/logger"
	"github.com/julianstephens/streakr/internal/models"
	"github.com/julianstephens/streakr/internal/storage"
)

// Prompter collects the menu's user input.
type Prompter interface {
	Choice() (constants.MenuChoice, error)
	Input(title string) (string, error)
}

type MenuCmd struct{}

func (c *MenuCmd) Run(ctx *Context) error {
	return RunMenu(ctx, huhPrompter{})
}

// RunMenu loops over menu selections until the user exits or the prompter
// fails. Errors from a single action are printed and the loop continues.
func RunMenu(ctx *Context, p Prompter) error {
	for {
		choice, err := p.Choice()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				ctx.Println("Goodbye!")
				return nil
			}
			return err
		}

		if choice == constants.MenuExit {
			ctx.Println("Goodbye!")
			return nil
		}

		if err := dispatch(ctx, p, choice); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			logger.Debug("Menu action failed", "choice", choice, "error", err)
			ctx.Println(menuError(err))
		}
	}
}

func dispatch(ctx *Context, p Prompter, choice constants.MenuChoice) error {
	switch choice {
	case constants.MenuCreate:
		name, err := p.Input("Enter a name for the habit:")
		if err != nil {
			return err
		}
		period, err := p.Input("Enter periodicity ('daily' or 'weekly'):")
		if err != nil {
			return err
		}
		habit, err := ctx.Tracker.Create(name, period)
		if err != nil {
			return err
		}
		ctx.Printf("Habit '%s' created successfully.\n", habit.Name)

	case constants.MenuList:
		habits, err := ctx.Tracker.Habits()
		if err != nil {
			return err
		}
		if len(habits) == 0 {
			ctx.Println("No habits found.")
			return nil
		}
		ctx.Println("Tracked Habits:")
		for _, h := range habits {
			ctx.Printf("- %s (%s)\n", h.Name, h.Periodicity)
		}

	case constants.MenuCheckOff:
		name, err := p.Input("Enter the name of the habit to check off:")
		if err != nil {
			return err
		}
		habit, err := ctx.Tracker.CheckOff(name, ctx.Tracker.Now())
		if err != nil {
			return err
		}
		ctx.Printf("Habit '%s' checked off successfully.\n", habit.Name)
		ctx.PerformAutomaticBackup()

	case constants.MenuFilter:
		period, err := p.Input("Enter periodicity ('daily' or 'weekly'):")
		if err != nil {
			return err
		}
		parsed, err := models.ParsePeriodicity(period)
		if err != nil {
			return err
		}
		period = parsed.String()
		habits, err := ctx.Tracker.ByPeriodicity(period)
		if err != nil {
			return err
		}
		if len(habits) == 0 {
			ctx.Printf("No %s habits found.\n", period)
			return nil
		}
		ctx.Printf("%s habits:\n", capitalize(period))
		for _, name := range analytics.NamesOf(habits) {
			ctx.Printf("- %s\n", name)
		}

	case constants.MenuLongestAll:
		longest, err := ctx.Tracker.LongestStreak()
		if err != nil {
			return err
		}
		ctx.Printf("Longest streak across all habits: %d periods\n", longest)

	case constants.MenuLongestForOne:
		name, err := p.Input("Enter the name of the habit:")
		if err != nil {
			return err
		}
		habits, err := ctx.Tracker.Habits()
		if err != nil {
			return err
		}
		habit, ok := analytics.FindByName(habits, name)
		if !ok {
			ctx.Printf("No habit named '%s' found.\n", name)
			return nil
		}
		ctx.Printf("Longest streak for '%s': %d periods\n", habit.Name, analytics.LongestStreakFor(habit))

	default:
		ctx.Println("Invalid option. Please choose a number between 1 and 7.")
	}
	return nil
}

func menuError(err error) string {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Sprintf("%s.", capitalize(err.Error()))
	case errors.Is(err, models.ErrInvalidPeriodicity):
		return "Invalid periodicity. Must be 'daily' or 'weekly'."
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// huhPrompter renders the menu with huh forms.
type huhPrompter struct{}

func (huhPrompter) Choice() (constants.MenuChoice, error) {
	options := make([]huh.Option[constants.MenuChoice], 0, len(constants.MenuLabels))
	for _, l := range constants.MenuLabels {
		options = append(options, huh.NewOption(fmt.Sprintf("%s. %s", l.Choice, l.Label), l.Choice))
	}

	var choice constants.MenuChoice
	err := huh.NewSelect[constants.MenuChoice]().
		Title("=== Habit Tracker Menu ===").
		Options(options...).
		Value(&choice).
		Run()
	return choice, err
}

func (huhPrompter) Input(title string) (string, error) {
	var value string
	err := huh.NewInput().
		Title(title).
		Value(&value).
		Run()
	return value, err
}
