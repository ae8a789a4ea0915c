package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/pkg/catalog"
	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/pkg/classifier"
	cfgPkg "github.com/Aryamantiwari17/Automatic-Email-Reply-System/pkg/config"
	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/pkg/extractor"
	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/pkg/faqload"
	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/pkg/llm"
	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/pkg/logger"
	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/pkg/respond"
	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/pkg/router"
	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/pkg/splitter"
	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/pkg/store"
	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/server"
)

type Flags struct {
	ConfigPath string
	FaqSource  string
	Serve      bool
	LogMode    string
}

// sampleEmails is the demo batch routed when running without -serve.
var sampleEmails = []string{
	"What is the price of ARRI SkyPanel S60-C?",
	"The RED DSMC2 camera I rented was amazing! Crystal clear footage and so easy to use.",
	"I'm extremely disappointed with the DJI Ronin-S. It was old and didn't work properly.",
	"How do I properly set up the RED DSMC2 camera?",
	"How do I adjust the color temperature on the ARRI SkyPanel S60-C?",
	"What's the maximum output of the ARRI SkyPanel S60-C?",
	"I'm looking for information about underwater housing for cameras.",
	"Is the Canon EF 24-70mm lens available for rent?",
}

func main() {
	flags := parseFlags()

	if err := run(flags); err != nil {
		log.Fatal(err)
	}
}

func parseFlags() Flags {
	var flags Flags

	flag.StringVar(&flags.ConfigPath, "config", "", "Path to config file")
	flag.StringVar(&flags.FaqSource, "faq", "", "FAQ corpus source (file path or URL); rebuilds the index when set")
	flag.BoolVar(&flags.Serve, "serve", false, "Expose the router over HTTP instead of routing the sample batch")
	flag.StringVar(&flags.LogMode, "log-mode", "dev", "Logger mode (dev or prod)")
	flag.Parse()

	return flags
}

func getSpinner(description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(color.CyanString(description)),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWidth(20),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetRenderBlankState(true),
	)
}

func run(flags Flags) error {
	cfg, err := cfgPkg.LoadConfig(flags.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}
	if flags.FaqSource != "" {
		cfg.Knowledge.FaqSource = flags.FaqSource
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		for _, e := range errs {
			color.Red("config error: %v", e)
		}
		return fmt.Errorf("invalid configuration")
	}

	logg, err := logger.New(flags.LogMode)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %v", err)
	}
	defer logg.Sync()

	ctx := context.Background()

	// Initialize components
	completer, err := llm.NewWithConfig(llm.ClientConfig{
		Model:     cfg.LLM.Model,
		MaxTokens: cfg.LLM.MaxTokens,
		BaseURL:   cfg.LLM.BaseURL,
		Timeout:   time.Duration(cfg.LLM.TimeoutSeconds) * time.Second,
		RateLimit: cfg.LLM.RateLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize completion client: %v", err)
	}

	embedder, err := llm.NewEmbedderWithConfig(llm.EmbedderConfig{
		Model:   cfg.LLM.EmbedModel,
		BaseURL: cfg.LLM.BaseURL,
		Timeout: time.Duration(cfg.LLM.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize embedder: %v", err)
	}

	equipmentStore, err := catalog.NewWithConfig(catalog.StoreConfig{
		Driver: cfg.Catalog.Driver,
		DSN:    cfg.Catalog.DSN,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize catalog: %v", err)
	}

	vectorStore, err := store.NewWithConfig(store.VectorStoreConfig{
		ConnString: cfg.Database.URL,
		TableName:  cfg.Database.TableName,
		VectorDim:  cfg.Database.VectorDim,
		SearchK:    cfg.Database.TopK,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize vector store: %v", err)
	}
	defer vectorStore.Close()

	// Seed the catalog before any routing traffic
	seedSpinner := getSpinner(" Seeding equipment catalog...")
	if err := equipmentStore.Seed(ctx, catalog.SampleEquipment()); err != nil {
		seedSpinner.Finish()
		return fmt.Errorf("failed to seed catalog: %v", err)
	}
	seedSpinner.Finish()
	color.Green("✓ Equipment catalog seeded")

	// Rebuild the FAQ index when a corpus source is configured
	if cfg.Knowledge.FaqSource != "" {
		loader := faqload.NewWithConfig(faqload.LoaderConfig{
			RateLimit: cfg.LLM.RateLimit,
		})
		corpus, err := loader.Load(ctx, cfg.Knowledge.FaqSource)
		if err != nil {
			return fmt.Errorf("failed to load FAQ corpus: %v", err)
		}

		split := splitter.NewWithConfig(splitter.SplitterConfig{
			ChunkSize: cfg.Knowledge.ChunkSize,
		})
		chunks := split.Split(corpus)

		indexSpinner := getSpinner(" Rebuilding FAQ index...")
		if err := vectorStore.Rebuild(ctx, chunks, embedder); err != nil {
			indexSpinner.Finish()
			return fmt.Errorf("failed to rebuild FAQ index: %v", err)
		}
		indexSpinner.Finish()
		color.Green("✓ FAQ index rebuilt with %d chunks", len(chunks))
	}

	// Wire the routing engine
	cls := classifier.New(completer, logg)
	ext := extractor.New(completer, logg)

	emailRouter := router.New(
		cls,
		respond.NewPositiveReview(completer, cfg.LLM.Temperature, logg),
		respond.NewNegativeReview(completer, cfg.LLM.Temperature, logg),
		respond.NewPriceAvailability(ext, equipmentStore, logg),
		respond.NewGeneralInquiry(embedder, vectorStore, completer, cfg.Database.TopK, cfg.LLM.Temperature, logg),
		logg,
	)

	if flags.Serve {
		srv := server.New(emailRouter, logg)
		return srv.ListenAndServe(cfg.Server.Port)
	}

	// Route the sample batch
	emailPrompt := color.New(color.FgGreen).PrintfFunc()
	categoryPrompt := color.New(color.FgYellow).PrintfFunc()
	responsePrompt := color.New(color.FgCyan).PrintfFunc()

	for _, email := range sampleEmails {
		result := emailRouter.Route(ctx, email)

		emailPrompt("\nEmail: %s\n", email)
		categoryPrompt("Category: %s\n", result.Category)
		responsePrompt("Response: %s\n", result.Response)
	}

	return nil
}
