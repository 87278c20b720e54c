package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/chipforge/matter-bindgen/encodable"
	"github.com/chipforge/matter-bindgen/idl"
	"github.com/chipforge/matter-bindgen/naming"
	"github.com/chipforge/matter-bindgen/types"
)

func main() {
	var (
		modelFile   = flag.String("model", "", "Path to data model JSON file")
		configFile  = flag.String("config", "", "Path to TOML config file (optional)")
		clusterName = flag.String("cluster", "", "Cluster to inspect (optional)")
		list        = flag.Bool("list", false, "List clusters and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *modelFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: bindgen -model <model.json> [-cluster name] [-config file.toml]")
		fmt.Fprintln(os.Stderr, "       bindgen -model <model.json> -list")
		fmt.Fprintln(os.Stderr, "       bindgen -model <model.json> -i  (interactive mode)")
		os.Exit(1)
	}

	cfg := toolConfig{}
	if *configFile != "" {
		loaded, err := loadToolConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger := zap.NewNop()
	if cfg.Verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger = dev
	}
	idl.SetLogger(logger)
	naming.SetLogger(logger)

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*modelFile, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*modelFile, *clusterName, cfg, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(modelFile, clusterName string, cfg toolConfig, listOnly bool) error {
	model, err := idl.LoadFile(modelFile)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	if err := idl.CheckSpecVersion(model, cfg.MinSpecVersion); err != nil {
		return err
	}

	fmt.Printf("Model: %s\n", modelFile)
	if model.SpecVersion != "" {
		fmt.Printf("Spec version: %s\n", model.SpecVersion)
	}
	fmt.Printf("Clusters: %d\n", len(model.Clusters))
	fmt.Printf("Global structs: %d\n", len(model.GlobalStructs))
	fmt.Printf("Global enums: %d\n", len(model.GlobalEnums))
	fmt.Printf("Global bitmaps: %d\n", len(model.GlobalBitmaps))

	if listOnly {
		fmt.Printf("\nClusters:\n")
		for _, c := range model.Clusters {
			fmt.Printf("  %s (attributes: %d, commands: %d, structs: %d)\n",
				c.Name, len(c.Attributes), len(c.Commands), len(c.Structs))
		}
		return nil
	}

	if clusterName == "" {
		fmt.Printf("\nUse -cluster to inspect a cluster, -list to list them, or -i for interactive mode.\n")
		return nil
	}

	cluster, err := idl.Named(model.Clusters, clusterName, func(c idl.Cluster) string { return c.Name })
	if err != nil {
		return err
	}

	return dumpCluster(model, cluster)
}

func dumpCluster(model *idl.Idl, cluster idl.Cluster) error {
	ctx := idl.NewLookupContext(model, &cluster)

	fmt.Printf("\nCluster %s (0x%04X)\n", nameStyle.Render(cluster.Name), cluster.Code)

	fmt.Printf("\nAttributes:\n")
	for _, attr := range cluster.Attributes {
		fmt.Printf("  %s\n", formatAttribute(attr, ctx))
	}

	fmt.Printf("\nCommands:\n")
	for _, cmd := range cluster.Commands {
		fmt.Printf("  %s -> %s\n", nameStyle.Render(cmd.Name), naming.CommandCallbackName(cmd, cluster))
	}

	return nil
}

func formatAttribute(attr idl.Attribute, ctx *idl.LookupContext) string {
	var b strings.Builder

	b.WriteString(attr.Definition.Name)
	b.WriteString(": ")
	b.WriteString(typeStyle.Render(attr.Definition.Type.Name))

	resolved, err := types.Resolve(attr.Definition.Type, ctx)
	if err != nil {
		b.WriteString(fmt.Sprintf("  [unresolved: %v]", err))
		return b.String()
	}
	b.WriteString(fmt.Sprintf("  [%s", resolved.Kind))
	if resolved.Bits > 0 {
		b.WriteString(fmt.Sprintf(" %d-bit", resolved.Bits))
	}
	b.WriteString("]")

	v := encodable.FromField(attr.Definition, ctx)
	if kt, err := v.KotlinType(); err == nil {
		b.WriteString("  kotlin=")
		b.WriteString(kt)
	}
	if sig, err := v.BoxedSignature(); err == nil {
		b.WriteString("  boxed=")
		b.WriteString(sig)
	}
	b.WriteString("  callback=")
	b.WriteString(naming.AttributeCallbackName(attr, ctx))

	return b.String()
}
