package cli

import (
	"github.com/julianstephens/streakr/internal/analytics"
	"github.com/julianstephens/streakr/internal/constants"
	"github.com/julianstephens/streakr/internal/models"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits with their streaks."`
	Check  HabitCheckCmd  `cmd:"" help:"Check off a habit."`
	Streak HabitStreakCmd `cmd:"" help:"Show the longest streak for one habit or across all habits."`
	Status HabitStatusCmd `cmd:"" help:"Show streak and broken state for a habit."`
}

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Periodicity string `short:"p" help:"How often the habit is due (daily or weekly)." default:"daily"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	habit, err := ctx.Tracker.Create(c.Name, c.Periodicity)
	if err != nil {
		return err
	}
	ctx.Printf("Habit '%s' created successfully.\n", habit.Name)
	return nil
}

type HabitListCmd struct {
	Periodicity string `short:"p" help:"Only show habits with this periodicity."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	var (
		habits []models.Habit
		err    error
	)
	if c.Periodicity != "" {
		if _, err := models.ParsePeriodicity(c.Periodicity); err != nil {
			return err
		}
		habits, err = ctx.Tracker.ByPeriodicity(c.Periodicity)
	} else {
		habits, err = ctx.Tracker.Habits()
	}
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		if c.Periodicity != "" {
			ctx.Printf("No %s habits found.\n", c.Periodicity)
		} else {
			ctx.Println("No habits found.")
		}
		return nil
	}

	for _, s := range analytics.Summarize(habits) {
		status := ""
		if s.Broken {
			status = " [BROKEN]"
		}
		ctx.Printf("- %s (%s) streak: %d%s\n", s.Name, s.Periodicity, s.Streak, status)
	}
	return nil
}

type HabitCheckCmd struct {
	Name string `arg:"" help:"Habit name."`
	At   string `help:"Completion time, RFC3339 or YYYY-MM-DD (default: now)." default:""`
}

func (c *HabitCheckCmd) Run(ctx *Context) error {
	at, err := ParseTimestamp(c.At, ctx.Tracker.Now())
	if err != nil {
		return err
	}

	habit, err := ctx.Tracker.CheckOff(c.Name, at)
	if err != nil {
		return err
	}

	ctx.Printf("Habit '%s' checked off at %s.\n", habit.Name, at.Format(constants.DisplayTimeFormat))
	ctx.PerformAutomaticBackup()
	return nil
}

type HabitStreakCmd struct {
	Name string `arg:"" optional:"" help:"Habit name (default: all habits)."`
}

func (c *HabitStreakCmd) Run(ctx *Context) error {
	if c.Name == "" {
		longest, err := ctx.Tracker.LongestStreak()
		if err != nil {
			return err
		}
		ctx.Printf("Longest streak across all habits: %d periods\n", longest)
		return nil
	}

	habit, err := ctx.Tracker.Find(c.Name)
	if err != nil {
		return err
	}
	ctx.Printf("Longest streak for '%s': %d periods\n", habit.Name, analytics.LongestStreakFor(habit))
	return nil
}

type HabitStatusCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitStatusCmd) Run(ctx *Context) error {
	s, err := ctx.Tracker.Status(c.Name)
	if err != nil {
		return err
	}

	ctx.Printf("%s (%s)\n", s.Name, s.Periodicity)
	ctx.Printf("  Completions: %d\n", s.Completions)
	ctx.Printf("  Streak:      %d periods\n", s.Streak)
	if s.Broken {
		ctx.Println("  Broken:      yes")
	} else {
		ctx.Println("  Broken:      no")
	}
	if s.Completed {
		ctx.Printf("  Last:        %s\n", s.LastCompletion.Format(constants.DisplayTimeFormat))
	} else {
		ctx.Println("  Last:        never")
	}
	return nil
}
