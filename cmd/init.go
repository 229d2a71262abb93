package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/data"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/srdapi"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Seed the local data directory, optionally from the 5e SRD",
	Long: `Creates the local data directory the game loads its catalogs from.
With --fetch, downloads the 5e SRD bestiary from dnd5eapi.co, converts
each monster into a catalog entry, and writes monsters.yaml. Without
--fetch, the game simply falls back to the built-in catalogs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, _ := cmd.Flags().GetString("dir")
		if dataDir == "" {
			rootDir, _ := os.Getwd()
			dataDir = filepath.Join(rootDir, "data")
		}

		force, _ := cmd.Flags().GetBool("force")
		fetch, _ := cmd.Flags().GetBool("fetch")

		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return err
		}
		fmt.Printf("Data directory: %s\n", dataDir)

		if !fetch {
			fmt.Println("Built-in catalogs will be used. Run with --fetch to seed a bigger bestiary from the SRD.")
			return nil
		}

		client := srdapi.NewClient(dataDir, force)

		list, err := client.FetchList("monsters")
		if err != nil {
			return fmt.Errorf("fetching monster index: %w", err)
		}
		fmt.Printf("Fetching %d monsters from the SRD...\n", list.Count)

		bar := progressbar.Default(int64(list.Count), "Downloading monsters")

		var monsters []data.Monster
		for _, ref := range list.Results {
			// Throttle to respect the API
			time.Sleep(100 * time.Millisecond)

			srd, err := client.FetchMonster(ref.URL)
			if err != nil {
				fmt.Printf("\nSkipping %s: %v\n", ref.Name, err)
				bar.Add(1)
				continue
			}
			monsters = append(monsters, srdapi.Convert(srd))
			bar.Add(1)
		}

		// The SRD has no dungeon boss; keep the built-in one so the
		// final floor still has something to guard it.
		if boss, ok := data.NewLoader(nil).Boss(); ok {
			monsters = append(monsters, boss)
		}

		if err := client.SaveCatalog(monsters); err != nil {
			return err
		}

		fmt.Printf("\nWrote %d monsters to %s\n", len(monsters), filepath.Join(dataDir, "monsters.yaml"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().Bool("force", false, "Overwrite existing catalog files")
	initCmd.Flags().Bool("fetch", false, "Download the SRD bestiary from dnd5eapi.co")
	initCmd.Flags().String("dir", "", "Data directory to seed (default ./data)")
}
