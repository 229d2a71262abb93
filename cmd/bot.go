package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/session"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/telegram"
)

var botToken string

// botCmd represents the bot command
var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Manage and run the Telegram bot",
}

// telegramBotCmd represents the telegram subcommand of bot
var telegramBotCmd = &cobra.Command{
	Use:   "telegram",
	Short: "Register a global Telegram bot",
	Run: func(cmd *cobra.Command, args []string) {
		if botToken == "" {
			fmt.Println("---")
			fmt.Println("Create your Telegram Bot & Get Token")
			fmt.Println("Open Telegram and search for the official @BotFather.")
			fmt.Println("Send the /newbot command and follow the prompts to name your bot and choose a unique username.")
			fmt.Println("BotFather will provide you with an HTTP API token. Store this token securely, as it is required for all API interactions. We will need it to configure labyrinth.")
			fmt.Println("For testing in a group, add the bot to a group and ensure its privacy settings allow it to read all messages (this can be configured in BotFather's settings).")
			fmt.Println("---")
			fmt.Print("token: ")

			scanner := bufio.NewScanner(os.Stdin)
			if scanner.Scan() {
				botToken = strings.TrimSpace(scanner.Text())
			}
		}

		if botToken != "" {
			viper.Set("telegram_token", botToken)
			err := viper.WriteConfig()
			if err != nil {
				// If config file doesn't exist, WriteConfig typically fails.
				err = viper.SafeWriteConfig()
				if err != nil {
					// Fallback: try to write to $HOME/.labyrinth.yaml
					home, _ := os.UserHomeDir()
					err = viper.WriteConfigAs(home + "/.labyrinth.yaml")
				}
			}
			if err == nil {
				fmt.Println("Telegram bot token saved successfully.")
			} else {
				fmt.Printf("Error saving configuration: %v\n", err)
			}
		}
	},
}

// botRunCmd starts the long-polling loop. Each chat gets its own
// profile, so players keep independent saves and transcripts.
var botRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the Telegram bot and serve games over chat",
	RunE: func(cmd *cobra.Command, args []string) error {
		token := viper.GetString("telegram_token")
		if token == "" {
			return fmt.Errorf("no Telegram token configured (run 'labyrinth bot telegram' first)")
		}

		factory := telegram.SessionFactory(func(chatID int64) (*session.Session, error) {
			return openSession(fmt.Sprintf("tg-%d", chatID))
		})

		bot := telegram.NewBot(token, factory)
		fmt.Println("Bot is running. Press Ctrl+C to stop.")
		return bot.Start(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(botCmd)
	botCmd.AddCommand(telegramBotCmd)
	botCmd.AddCommand(botRunCmd)

	telegramBotCmd.Flags().StringVarP(&botToken, "token", "t", "", "Telegram bot API token")
}
