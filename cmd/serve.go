package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nlebele/dyscreen/internal/assess"
	"github.com/nlebele/dyscreen/internal/evaluate"
	"github.com/nlebele/dyscreen/internal/llm"
	"github.com/nlebele/dyscreen/internal/question"
	"github.com/nlebele/dyscreen/internal/risk"
	"github.com/nlebele/dyscreen/internal/server"
	"github.com/nlebele/dyscreen/internal/shapes"
	"github.com/nlebele/dyscreen/internal/store"
	"github.com/nlebele/dyscreen/internal/survey"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the screening HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides DYSCREEN_ADDR, default :8080)")
}

func runServe(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	llmCfg := llm.ConfigFromEnv()
	if err := llmCfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return fmt.Errorf("no usable LLM configuration: %w", err)
		}
		llmCfg = discovered
	}
	provider, err := llm.NewProvider(context.Background(), llmCfg, s.EventRepo())
	if err != nil {
		return fmt.Errorf("initialize LLM provider: %w", err)
	}

	questions := question.New(provider, question.DefaultConfig())
	questions.SetIllustrator(shapes.NewRenderer())

	evaluator := evaluate.New(provider)
	aggregator := risk.New(s.ResultRepo(), s.SurveyRepo())
	tracker := assess.NewTracker(questions, evaluator, aggregator, s.ResultRepo())
	surveys := survey.NewService(s.SurveyRepo())

	srv := server.New(serverConfig(cmd), tracker, surveys, s.ResultRepo())
	log.Printf("dyscreen listening on %s (db %s, llm %s)", serverConfig(cmd).Addr, dbPath, llmCfg.Provider)
	return srv.Run()
}

func serverConfig(cmd *cobra.Command) server.Config {
	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = os.Getenv("DYSCREEN_ADDR")
	}
	if addr == "" {
		addr = ":8080"
	}

	var origins []string
	if raw := os.Getenv("DYSCREEN_CORS_ORIGINS"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return server.Config{Addr: addr, AllowedOrigins: origins}
}
