package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ironsheep/image-geometry-mcp/internal/backend"
	"github.com/ironsheep/image-geometry-mcp/internal/config"
	"github.com/ironsheep/image-geometry-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func usage() {
	fmt.Println("image-geometry-mcp - MCP server for ImageMagick-style geometry strings")
	fmt.Println()
	fmt.Println("Usage: image-geometry-mcp [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --config <path>  Read settings from a YAML file")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Printf("  %s=<path>     YAML config file (overridden by --config)\n", config.EnvConfig)
	fmt.Printf("  %s=debug   Enable debug logging\n", config.EnvLogLevel)
	fmt.Printf("  %s=<name>     Default engine: imaging, bild or vips\n", config.EnvEngine)
	fmt.Printf("  %s=<name>     Default resampling filter\n", config.EnvFilter)
	fmt.Printf("  %s=<dir>    Tesseract tessdata directory\n", config.EnvTessdata)
	fmt.Println()
	fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}

func main() {
	configPath := os.Getenv(config.EnvConfig)

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; {
		case arg == "--version" || arg == "-v" || arg == "version":
			fmt.Printf("image-geometry-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case arg == "--help" || arg == "-h" || arg == "help":
			usage()
			return
		case arg == "--config":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "--config requires a path")
				os.Exit(2)
			}
			i++
			configPath = args[i]
		case strings.HasPrefix(arg, "--config="):
			configPath = strings.TrimPrefix(arg, "--config=")
		default:
			fmt.Fprintf(os.Stderr, "unknown option: %s\n", arg)
			usage()
			os.Exit(2)
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	if cfg.Debug() {
		log.Printf("Image Geometry MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	be := backend.New(backend.Config{
		Default: cfg.Engine,
		Vips: backend.VipsConfig{
			Enabled:       cfg.Vips.Enabled,
			Concurrency:   cfg.Vips.Concurrency,
			MaxCacheMemMB: cfg.Vips.MaxCacheMemMB,
		},
		Logger: log.Default(),
		Debug:  cfg.Debug(),
	})
	if err := be.Startup(); err != nil {
		log.Fatalf("Backend error: %v", err)
	}
	defer be.Shutdown()

	srv := server.New(cfg, be)
	if err := srv.Run(); err != nil {
		log.Printf("Server error: %v", err)
		be.Shutdown()
		os.Exit(1)
	}
}
