package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/starpathlabs/starpath/internal/curriculum"
	"github.com/starpathlabs/starpath/internal/progression"
	"github.com/starpathlabs/starpath/internal/ui/components"
	"github.com/starpathlabs/starpath/internal/ui/theme"
)

var completeCmd = &cobra.Command{
	Use:   "complete [module-id]",
	Short: "Record a finished module run",
	Long: "Record a finished run of a module. Without part flags the whole run\n" +
		"(flashcards, quiz, and challenge) is recorded at once; with flags only\n" +
		"the named parts count and the completion is held until all parts are done.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		doc, err := a.svc.Load(ctx, a.wallet)
		if err != nil {
			return err
		}

		moduleID := doc.CurrentModuleID
		if len(args) == 1 {
			moduleID = args[0]
		}
		if moduleID == "" {
			fmt.Println("Every module is already charted.")
			return nil
		}

		mod, err := a.graph.Module(moduleID)
		if errors.Is(err, curriculum.ErrNotFound) {
			fmt.Printf("No module %q on the map. Run `starpath map` to see the galaxy chart.\n", moduleID)
			return nil
		}
		if err != nil {
			return err
		}

		flashcards, _ := cmd.Flags().GetBool("flashcards")
		quiz, _ := cmd.Flags().GetBool("quiz")
		challenge, _ := cmd.Flags().GetBool("challenge")
		if !flashcards && !quiz && !challenge {
			flashcards, quiz, challenge = true, true, true
		}

		run := progression.NewRun(mod)
		if flashcards {
			run.MarkFlashcards()
		}
		if quiz {
			run.MarkQuiz()
		}
		if challenge {
			run.MarkChallenge()
		}

		comp, err := a.svc.CompleteRun(ctx, doc, run)
		switch {
		case errors.Is(err, progression.ErrModuleLocked):
			fmt.Println(theme.Locked.Render("🔒 " + mod.Title + " is still locked."))
			fmt.Println(theme.Hint.Render("Complete the modules before it first; `starpath map` shows the order."))
			return nil
		case errors.Is(err, progression.ErrRunNotReady):
			fmt.Println(err.Error())
			return nil
		}

		var pending *progression.SyncPendingError
		if errors.As(err, &pending) {
			fmt.Fprintln(os.Stderr, "Progress saved locally; run `starpath sync` once the store is reachable.")
			err = nil
		}
		if err != nil {
			return err
		}

		printCompletion(a, comp)
		a.checkIn(ctx, doc)
		a.drainToasts()
		return nil
	},
}

func init() {
	completeCmd.Flags().Bool("flashcards", false, "Count the flashcard deck as done")
	completeCmd.Flags().Bool("quiz", false, "Count the quiz as done")
	completeCmd.Flags().Bool("challenge", false, "Count the coding challenge as done")
}

func printCompletion(a *app, comp *progression.Completion) {
	if comp.AlreadyCompleted {
		fmt.Printf("%s was already charted. XP is never awarded twice.\n", comp.Module.Title)
		return
	}

	fmt.Println(theme.Completed.Render(fmt.Sprintf("✓ %s  +%d XP", comp.Module.Title, comp.XPAwarded)))
	if comp.TokensQueued > 0 {
		fmt.Println(theme.Subtitle.Render(fmt.Sprintf("  %d ✦ tokens queued to your wallet", comp.TokensQueued)))
	}
	if comp.GalaxyBox != nil {
		box := comp.GalaxyBox
		fmt.Println(theme.RarityStyle(box.Rarity).Render(fmt.Sprintf("🎁 A %s mystery box for finishing the galaxy!", box.Rarity)))
		fmt.Println(theme.Hint.Render("  starpath boxes open " + box.ID))
	}

	switch {
	case comp.CurriculumComplete:
		fmt.Println(components.Card("🏁 Curriculum complete",
			"Every module in every galaxy is charted.\nThe map is yours, traveler."))
	case comp.NextModuleID != "":
		if next, err := a.graph.Module(comp.NextModuleID); err == nil {
			fmt.Println(theme.Hint.Render("  Next: " + next.Title))
		}
	}
}
