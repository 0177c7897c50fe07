package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/youruser/colorpages/internal/batch"
	"github.com/youruser/colorpages/internal/catalog"
	"github.com/youruser/colorpages/internal/queue"

	imagepkg "github.com/youruser/colorpages/internal/image"
)

func headerOptions(seed int64) batch.HeaderOptions {
	opts := batch.HeaderOptions{
		TemplatePath: cfg.Pipeline.TemplatePath,
		PanelSize:    cfg.Pipeline.PanelSize(),
	}
	if seed != 0 {
		opts.NewRand = batch.SeededRand(seed)
	}
	return opts
}

func headersCmd() *cobra.Command {
	var root, template string
	var seed int64

	cmd := &cobra.Command{
		Use:   "headers",
		Short: "Compose header.png for every subject folder under the assets root",
		RunE: func(cmd *cobra.Command, args []string) error {
			if root == "" {
				root = cfg.Pipeline.AssetsRoot
			}
			opts := headerOptions(seed)
			if template != "" {
				opts.TemplatePath = template
			}
			_, err := batch.RunHeaders(root, opts)
			return err
		},
	}
	cmd.Flags().StringVar(&root, "root", "", "assets root (default from config)")
	cmd.Flags().StringVar(&template, "template", "", "overlay template PNG (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "fixed shuffle seed; 0 picks a fresh order per folder")
	return cmd
}

func auditCmd() *cobra.Command {
	var opts batch.AuditOptions
	var fix bool

	cmd := &cobra.Command{
		Use:   "audit <dir>",
		Short: "Report images whose subject spans too little of the canvas",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := cfg.Pipeline
			if !cmd.Flags().Changed("canvas") {
				opts.CanvasSize = p.AuditCanvas
			}
			if !cmd.Flags().Changed("threshold") {
				opts.Threshold = p.AuditThreshold
			}
			if !cmd.Flags().Changed("accept") {
				opts.Accept = p.AcceptOccupancy
			}

			small, err := batch.AuditDir(args[0], opts)
			if err != nil {
				return err
			}
			for _, f := range small {
				fmt.Printf("%s\t%.1f%%\t%dx%d\n", f.File, f.Occupancy.Fraction*100, f.Occupancy.ContentWidth, f.Occupancy.ContentHeight)
			}
			if !fix || len(small) == 0 {
				return nil
			}
			spec, err := p.CanvasSpec()
			if err != nil {
				return err
			}
			fixed := batch.Remediate(small, spec)
			logrus.WithFields(logrus.Fields{"fixed": fixed, "flagged": len(small)}).Info("remediation finished")
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.Prefix, "prefix", "", "only files starting with this prefix")
	cmd.Flags().IntVar(&opts.CanvasSize, "canvas", imagepkg.DefaultAuditCanvas, "canvas size occupancy is measured against")
	cmd.Flags().IntVar(&opts.Threshold, "threshold", imagepkg.DefaultAuditThreshold, "luminance below which a pixel is ink")
	cmd.Flags().Float64Var(&opts.Accept, "accept", imagepkg.DefaultAcceptOccupancy, "minimum accepted occupancy")
	cmd.Flags().BoolVar(&fix, "fix", false, "normalize flagged files in place")
	return cmd
}

func normalizeCmd() *cobra.Command {
	var opts batch.NormalizeOptions
	var threshold, margin int

	cmd := &cobra.Command{
		Use:   "normalize <dir>",
		Short: "Crop, scale and center every PNG in a directory onto the canonical canvas",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := cfg.Pipeline.CanvasSpec()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("threshold") {
				spec.Threshold = threshold
			}
			if cmd.Flags().Changed("margin") {
				spec.Margin = margin
			}
			opts.Spec = spec
			_, err = batch.NormalizeDir(args[0], opts)
			return err
		},
	}
	cmd.Flags().StringVar(&opts.Prefix, "prefix", "", "only files starting with this prefix")
	cmd.Flags().StringVar(&opts.OutputDir, "out", "", "output directory (default: overwrite in place)")
	cmd.Flags().IntVar(&threshold, "threshold", imagepkg.DefaultThreshold, "luminance below which a pixel is ink")
	cmd.Flags().IntVar(&margin, "margin", 25, "margin in pixels")
	return cmd
}

func debugCmd() *cobra.Command {
	var threshold int

	cmd := &cobra.Command{
		Use:   "debug <in.png> <out.png>",
		Short: "Draw the detected bounding box onto a copy of an image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("threshold") {
				threshold = cfg.Pipeline.Threshold
			}
			style, err := cfg.Pipeline.DebugStyle()
			if err != nil {
				return err
			}
			img, err := imagepkg.Load(args[0])
			if err != nil {
				return err
			}
			out, box, ok := imagepkg.Visualize(img, threshold, style)
			if !ok {
				logrus.WithField("file", args[0]).Warn("no content detected")
				return nil
			}
			if err := imagepkg.Save(out, args[1]); err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{"bbox": box.String(), "output": args[1]}).Info("debug image saved")
			return nil
		},
	}
	cmd.Flags().IntVar(&threshold, "threshold", imagepkg.DefaultThreshold, "luminance below which a pixel is ink")
	return cmd
}

func fetchCmd() *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:   "fetch <url> <folder>",
		Short: "Download a generated image into a subject folder as a style panel",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := batch.FetchPanel(args[0], args[1], style, cfg.Fetch.RetryOptions())
			return err
		},
	}
	cmd.Flags().StringVar(&style, "style", "outline", "panel style: outline, pencil or paint")
	return cmd
}

func urlsCmd() *cobra.Command {
	var sample bool
	var seed int64

	cmd := &cobra.Command{
		Use:   "urls",
		Short: "Print site paths for every catalog page",
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := catalog.LoadCategoriesFromDir(cfg.Catalog.ContentDir)
			if err != nil {
				return err
			}
			var urls []string
			if sample {
				if seed == 0 {
					seed = time.Now().UnixNano()
				}
				urls = catalog.SampleURLs(all, rand.New(rand.NewSource(seed)))
			} else {
				urls = catalog.AllURLs(all, cfg.Catalog.StaticPages)
			}
			for _, u := range urls {
				fmt.Println(u)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&sample, "sample", false, "print home plus one random category and image page")
	cmd.Flags().Int64Var(&seed, "seed", 0, "sample seed")
	return cmd
}

func workerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Consume header jobs from kafka",
		RunE: func(cmd *cobra.Command, args []string) error {
			logrus.SetFormatter(new(logrus.JSONFormatter))
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			k := cfg.Kafka
			err := queue.Consume(ctx, k.Brokers, k.Topic, k.GroupID, func(task queue.HeaderTask) error {
				dest, err := batch.ProcessFolder(task.Folder, headerOptions(task.Seed))
				if err != nil {
					return err
				}
				logrus.WithFields(logrus.Fields{"folder": task.Folder, "output": dest}).Info("header saved")
				return nil
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}
