package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/config"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/consts"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/db"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/di"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/logger"
	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/server"

	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func main() {
	cliApp := &cli.App{
		Name:    "photoshare",
		Usage:   "photo sharing api server",
		Version: consts.ApplicationVersion,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "directory containing config.yaml",
				Value:   "config",
			},
		},
		Before: func(ctx *cli.Context) error {
			return config.InitConfig(ctx.String("config"))
		},
		Action: serveAction,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start http server",
				Action: serveAction,
			},
			{
				Name:   "migrate",
				Usage:  "create or update the database schema and exit",
				Action: migrateAction,
			},
			{
				Name:  "routes",
				Usage: "print the registered routes",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "json or yaml", Value: "json"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write to file instead of stdout"},
				},
				Action: routesAction,
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		logger.L.Fatal("photoshare exited", zap.Error(err))
	}
}

func serveAction(ctx *cli.Context) error {
	cfg := config.Get()
	gin.SetMode(cfg.Server.Mode)

	app, cleanup, err := di.InitializeApplication(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	printWelcomeMessage(os.Stdout, cfg)
	return server.Run(ctx.Context, ":"+cfg.Server.Port, app.Engine)
}

func migrateAction(_ *cli.Context) error {
	gdb, err := db.InitDB(config.Get().Database)
	if err != nil {
		return err
	}
	defer db.Close(gdb)
	logger.L.Info("database migrated", zap.String("type", config.Get().Database.Type))
	return nil
}

func routesAction(ctx *cli.Context) error {
	cfg := config.Get()
	gin.SetMode(gin.ReleaseMode)

	app, cleanup, err := di.InitializeApplication(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	out := io.Writer(os.Stdout)
	if path := ctx.String("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return exportRoutes(out, app.Engine.Routes(), ctx.String("format"))
}

type routeInfo struct {
	Method  string `json:"method" yaml:"method"`
	Path    string `json:"path" yaml:"path"`
	Handler string `json:"handler" yaml:"handler"`
}

func exportRoutes(w io.Writer, routes gin.RoutesInfo, format string) error {
	list := make([]routeInfo, 0, len(routes))
	for _, route := range routes {
		list = append(list, routeInfo{
			Method:  route.Method,
			Path:    route.Path,
			Handler: route.Handler,
		})
	}

	switch format {
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(list)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func printWelcomeMessage(w io.Writer, cfg config.Config) {
	title := color.New(color.FgCyan, color.Bold).SprintFunc()
	label := color.New(color.FgHiBlack).SprintFunc()
	value := color.New(color.FgGreen).SprintFunc()

	fmt.Fprintln(w)
	fmt.Fprintln(w, " ┌───────────────────────────────────────────────────────┐")
	fmt.Fprintf(w, " │   %s\n", title(consts.ApplicationName))
	fmt.Fprintln(w, " ├───────────────────────────────────────────────────────┤")
	fmt.Fprintf(w, " │   %s %s\n", label("version :"), value(consts.ApplicationVersion))
	fmt.Fprintf(w, " │   %s %s\n", label("port    :"), value(cfg.Server.Port))
	fmt.Fprintf(w, " │   %s %s\n", label("database:"), value(cfg.Database.Type))
	fmt.Fprintf(w, " │   %s %s\n", label("mode    :"), value(cfg.Server.Mode))
	fmt.Fprintln(w, " └───────────────────────────────────────────────────────┘")
	fmt.Fprintln(w)
}
