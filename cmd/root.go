package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "labyrinth",
	Short: "A turn-based dungeon crawler for the terminal and Telegram",
	Long: `Labyrinth Explorer is a turn-based dungeon crawler. Roll a
character, outfit them in town, and descend through the labyrinth to
the Dragon at the bottom.

Run 'labyrinth play' to start or continue an expedition.`,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.labyrinth.yaml)")
	rootCmd.PersistentFlags().String("data_dir", "", "directory holding catalog YAML overrides")
	rootCmd.PersistentFlags().String("profiles_dir", "", "directory holding save profiles")

	_ = viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data_dir"))
	_ = viper.BindPFlag("profiles_dir", rootCmd.PersistentFlags().Lookup("profiles_dir"))
}

// initConfig reads in the config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".labyrinth")
	}

	viper.SetEnvPrefix("labyrinth")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// profilesDir resolves the save-profiles directory from config, with a
// home-directory default.
func profilesDir() string {
	if dir := viper.GetString("profiles_dir"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "profiles"
	}
	return filepath.Join(home, ".labyrinth", "profiles")
}

// dataDirs resolves the catalog fallback hierarchy: an explicit
// override directory first, then ./data, then the built-in defaults.
func dataDirs() []string {
	var dirs []string
	if dir := viper.GetString("data_dir"); dir != "" {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "data")
	return dirs
}
