package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/session"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage save profiles",
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List existing profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles := session.NewProfileManager(profilesDir())
		names, err := profiles.List()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No profiles yet. Run 'labyrinth play' to create one.")
			return nil
		}
		for _, name := range names {
			marker := " "
			if _, err := os.Stat(profiles.SavePath(name)); err == nil {
				marker = "*"
			}
			fmt.Printf("%s %s\n", marker, name)
		}
		fmt.Println("\n(* = has a save)")
		return nil
	},
}

var profilesDeleteCmd = &cobra.Command{
	Use:   "delete <profile>",
	Short: "Delete a profile, its save, and its transcript",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles := session.NewProfileManager(profilesDir())
		if err := profiles.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("Profile %q deleted.\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profilesCmd)
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesDeleteCmd)
}
