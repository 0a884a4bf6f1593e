package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/chzyer/readline"
	"github.com/joho/godotenv"
	"github.com/verdantlab/calmspace/pkg/bus"
	"github.com/verdantlab/calmspace/pkg/channels"
	"github.com/verdantlab/calmspace/pkg/classify"
	"github.com/verdantlab/calmspace/pkg/config"
	"github.com/verdantlab/calmspace/pkg/dialog"
	"github.com/verdantlab/calmspace/pkg/logger"
	"github.com/verdantlab/calmspace/pkg/providers"
	"github.com/verdantlab/calmspace/pkg/reminder"
	"github.com/verdantlab/calmspace/pkg/session"
)

var (
	version   = "dev"
	gitCommit string
	buildTime string
	goVersion string
)

const appName = "calmspace"

func formatVersion() string {
	v := version
	if gitCommit != "" {
		v += fmt.Sprintf(" (git: %s)", gitCommit)
	}
	return v
}

func formatBuildInfo() (build string, goVer string) {
	if buildTime != "" {
		build = buildTime
	}
	goVer = goVersion
	if goVer == "" {
		goVer = runtime.Version()
	}
	return
}

func printVersion() {
	fmt.Printf("%s %s\n", appName, formatVersion())
	build, goVer := formatBuildInfo()
	if build != "" {
		fmt.Printf("  Build: %s\n", build)
	}
	if goVer != "" {
		fmt.Printf("  Go: %s\n", goVer)
	}
}

func main() {
	// A .env beside the binary is a convenience for local runs; missing is
	// fine.
	_ = godotenv.Load()

	if err := executeCLI(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func getConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".calmspace", "config.json")
}

func loadConfig() (*config.Config, error) {
	return config.LoadConfig(getConfigPath())
}

func validateRuntimeConfig(cfg *config.Config, requireChannel bool) error {
	configPath := getConfigPath()
	if strings.TrimSpace(cfg.GetAPIKey()) == "" {
		return fmt.Errorf("provider.api_key is required in %s or CALMSPACE_PROVIDER_API_KEY", configPath)
	}
	if requireChannel {
		discord := strings.TrimSpace(cfg.Channels.Discord.Token)
		telegram := strings.TrimSpace(cfg.Channels.Telegram.Token)
		if discord == "" && telegram == "" {
			return fmt.Errorf("a channel token is required in %s: channels.discord.token or channels.telegram.token", configPath)
		}
	}
	return nil
}

// buildEngine wires the shared conversation stack: session store, keyword
// matcher, completion client, composer, and controller.
func buildEngine(cfg *config.Config, msgBus *bus.MessageBus) (session.Store, *dialog.Composer, *dialog.Controller, error) {
	var store session.Store
	if path := cfg.StorePath(); path != "" {
		s, err := session.NewSQLiteStore(path, cfg.Session.HistoryCap, cfg.Session.MoodCap)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open session store: %w", err)
		}
		store = s
	} else {
		store = session.NewMemoryStore(cfg.Session.HistoryCap, cfg.Session.MoodCap)
	}

	client, err := providers.NewChatCompletionsClient(providers.ClientOptions{
		APIBase: cfg.GetAPIBase(),
		APIKey:  cfg.GetAPIKey(),
		Model:   cfg.Bot.Model,
		Proxy:   cfg.Provider.Proxy,
		Timeout: cfg.RequestTimeout(),
	})
	if err != nil {
		store.Close()
		return nil, nil, nil, fmt.Errorf("create completion client: %w", err)
	}

	composer := dialog.NewComposer(client, dialog.ComposerOptions{
		MaxTokens:    cfg.Bot.MaxTokens,
		Temperature:  cfg.Bot.Temperature,
		ContextTurns: cfg.Session.ContextTurns,
	})
	controller := dialog.NewController(msgBus, store, classify.New(), composer)
	return store, composer, controller, nil
}

func onboard() error {
	configPath := getConfigPath()

	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Config already exists at %s\n", configPath)
		fmt.Print("Overwrite? (y/n): ")
		reader := bufio.NewReader(os.Stdin)
		response, readErr := reader.ReadString('\n')
		if readErr != nil {
			fmt.Println("Aborted.")
			return nil
		}
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if err := config.SaveConfig(configPath, cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Printf("%s is ready!\n", appName)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Add your API key to", configPath)
	fmt.Println("  2. (Gateway mode) Add a Discord or Telegram bot token under channels")
	fmt.Println("  3. Chat locally: calmspace chat")
	fmt.Println("  4. Run gateway: calmspace gateway")
	fmt.Println("  5. Check readiness: calmspace status")
	return nil
}

func chatCmd(message string, debug bool) error {
	logger.Init(debug)
	defer logger.Sync()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := validateRuntimeConfig(cfg, false); err != nil {
		return err
	}

	msgBus := bus.NewMessageBus()
	defer msgBus.Close()

	store, _, controller, err := buildEngine(cfg, msgBus)
	if err != nil {
		return err
	}
	defer store.Close()

	if strings.TrimSpace(message) != "" {
		out := controller.Respond(context.Background(), cliMessage(message))
		fmt.Printf("\n%s\n", out.Content)
		return nil
	}

	fmt.Printf("%s Interactive mode (type 'exit' or Ctrl+C to quit)\n\n", appName)
	interactiveMode(controller)
	return nil
}

func cliMessage(text string) bus.InboundMessage {
	return bus.InboundMessage{
		Channel:  "cli",
		SenderID: "local",
		ChatID:   "direct",
		Content:  text,
	}
}

func interactiveMode(controller *dialog.Controller) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "You: ",
		HistoryFile:     filepath.Join(os.TempDir(), ".calmspace_history"),
		HistoryLimit:    100,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Printf("Error initializing readline: %v\n", err)
		fmt.Println("Falling back to simple input mode...")
		simpleInteractiveMode(controller)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt || err == io.EOF {
				fmt.Println("\nTake care! 💙")
				return
			}
			fmt.Printf("Error reading input: %v\n", err)
			continue
		}

		if done := handleChatLine(controller, line); done {
			return
		}
	}
}

func simpleInteractiveMode(controller *dialog.Controller) {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("You: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				fmt.Println("\nTake care! 💙")
				return
			}
			fmt.Printf("Error reading input: %v\n", err)
			continue
		}

		if done := handleChatLine(controller, line); done {
			return
		}
	}
}

func handleChatLine(controller *dialog.Controller, line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}
	if input == "exit" || input == "quit" {
		fmt.Println("Take care! 💙")
		return true
	}

	out := controller.Respond(context.Background(), cliMessage(input))
	fmt.Printf("\n%s\n", out.Content)
	for _, qr := range out.QuickReplies {
		fmt.Printf("  %s — type '%s'\n", qr.Label, qr.Value)
	}
	fmt.Println()
	return false
}

func gatewayCmd(debug bool) error {
	logger.Init(debug)
	defer logger.Sync()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := validateRuntimeConfig(cfg, true); err != nil {
		return err
	}

	msgBus := bus.NewMessageBus()
	store, composer, controller, err := buildEngine(cfg, msgBus)
	if err != nil {
		return err
	}
	defer store.Close()

	channelManager, err := channels.NewManager(cfg, msgBus)
	if err != nil {
		return fmt.Errorf("create channel manager: %w", err)
	}

	fmt.Printf("✓ Channels enabled: %s\n", strings.Join(channelManager.GetEnabledChannels(), ", "))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := channelManager.StartAll(ctx); err != nil {
		return fmt.Errorf("start channels: %w", err)
	}

	if cfg.Reminder.Enabled {
		nudges, err := reminder.NewService(cfg.Reminder.Cron, store, channelManager, composer)
		if err != nil {
			channelManager.StopAll(ctx)
			return err
		}
		go nudges.Run(ctx)
		fmt.Printf("✓ Reminder service started (%s)\n", cfg.Reminder.Cron)
	}

	go controller.Run(ctx)

	fmt.Println("✓ Gateway started")
	fmt.Println("Press Ctrl+C to stop")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	<-sigChan

	fmt.Println("\nShutting down...")
	cancel()
	channelManager.StopAll(context.Background())
	msgBus.Close()
	fmt.Println("✓ Gateway stopped")
	return nil
}

func statusCmd() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	configPath := getConfigPath()

	fmt.Printf("%s Status\n", appName)
	fmt.Printf("Version: %s\n", formatVersion())
	build, _ := formatBuildInfo()
	if build != "" {
		fmt.Printf("Build: %s\n", build)
	}
	fmt.Println()

	if _, err := os.Stat(configPath); err == nil {
		fmt.Println("Config:", configPath, "✓")
	} else {
		fmt.Println("Config:", configPath, "✗")
	}

	storePath := cfg.StorePath()
	if storePath == "" {
		fmt.Println("Session store: in-memory")
	} else if _, err := os.Stat(storePath); err == nil {
		fmt.Println("Session store:", storePath, "✓")
	} else {
		fmt.Println("Session store:", storePath, "not initialized")
	}

	fmt.Printf("Model: %s\n", cfg.Bot.Model)

	status := func(enabled bool) string {
		if enabled {
			return "✓"
		}
		return "not set"
	}
	apiReady := strings.TrimSpace(cfg.GetAPIKey()) != ""
	discordReady := strings.TrimSpace(cfg.Channels.Discord.Token) != ""
	telegramReady := strings.TrimSpace(cfg.Channels.Telegram.Token) != ""

	fmt.Println("Provider API:", status(apiReady))
	fmt.Println("Discord token:", status(discordReady))
	fmt.Println("Telegram token:", status(telegramReady))
	fmt.Println("Chat ready:", status(apiReady))
	fmt.Println("Gateway ready:", status(apiReady && (discordReady || telegramReady)))
	return nil
}

// sessionsCmd dumps a one-line summary per known session, for diagnostics.
func sessionsCmd() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	path := cfg.StorePath()
	if path == "" {
		fmt.Println("Session store is in-memory; nothing persisted.")
		return nil
	}

	store, err := session.NewSQLiteStore(path, cfg.Session.HistoryCap, cfg.Session.MoodCap)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer store.Close()

	keys, err := store.Keys()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		fmt.Println("No sessions recorded.")
		return nil
	}

	fmt.Printf("Sessions (%d):\n", len(keys))
	for _, key := range keys {
		sess, err := store.GetOrCreate(key)
		if err != nil {
			fmt.Printf("  %s: error: %v\n", key, err)
			continue
		}
		origin := "no origin"
		if sess.Channel != "" {
			origin = sess.Channel + ":" + sess.ChatID
		}
		fmt.Printf("  %s: %d turns, %d moods, challenge day %d, %s\n",
			key, len(sess.Conversation), len(sess.Moods), sess.ChallengeDay, origin)
	}
	return nil
}
