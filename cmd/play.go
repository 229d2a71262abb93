package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/data"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/engine"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play [profile]",
	Short: "Start or continue an expedition in the terminal",
	Long: `Opens the game in a full-screen terminal UI. Each profile keeps
its own save and transcript; omit the argument to play the default
profile.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		profile := "default"
		if len(args) == 1 {
			profile = args[0]
		}

		sess, err := openSession(profile)
		if err != nil {
			fmt.Printf("Failed to open profile %q: %v\n", profile, err)
			os.Exit(1)
		}
		defer sess.Close()

		if err := RunTUI(sess, profile); err != nil {
			fmt.Printf("Fatal TUI error: %v\n", err)
			os.Exit(1)
		}
	},
}

// openSession wires the full stack for one profile: catalog loader,
// save snapshot, transcript, dispatcher.
func openSession(profile string) (*session.Session, error) {
	profiles := session.NewProfileManager(profilesDir())
	if err := profiles.Create(profile); err != nil {
		return nil, err
	}

	transcript, err := session.NewStore(profiles.LogPath(profile))
	if err != nil {
		return nil, err
	}

	opts := engine.Options{
		Loader:  data.NewLoader(dataDirs()),
		Persist: session.NewSaveManager(profiles.SavePath(profile)),
	}
	sess, err := session.NewSession(opts, transcript)
	if err != nil {
		transcript.Close()
		return nil, err
	}
	return sess, nil
}

func init() {
	rootCmd.AddCommand(playCmd)
}
