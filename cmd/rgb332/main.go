package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/bodgit/rgb332"
	"github.com/bodgit/rgb332/checkerboard"
	"github.com/bodgit/rgb332/image"
	"github.com/bodgit/rgb332/pixel"
	"github.com/urfave/cli/v2"
)

const defaultCheckerboard = "checkerboard.rgb332"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func newConverter(c *cli.Context) (*rgb332.Converter, *rgb332.Cache, error) {
	var cache *rgb332.Cache
	if file := c.String("cache"); file != "" {
		var err error
		if cache, err = rgb332.NewCache(file); err != nil {
			return nil, nil, err
		}
	}

	filter, err := rgb332.ParseFilter(c.String("filter"))
	if err != nil {
		cache.Close()
		return nil, nil, err
	}

	r := rgb332.New(cache, newLogger(c))
	r.Filter = filter

	return r, cache, nil
}

func parseColor(s string) (uint8, error) {
	v, err := pixel.ParseHex(s)
	if err != nil {
		return 0, err
	}

	// ParseHex keeps the low 32 bits, so check the significant digits too
	digits := strings.TrimLeft(strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "0x"), "#"), "0")
	if v > 0xff || len(digits) > 2 {
		return 0, fmt.Errorf("color %q is not a single RGB332 byte", s)
	}
	return uint8(v), nil
}

func hexColor(v uint8) string {
	return fmt.Sprintf("%02x", v)
}

func checkerboardOptions(c *cli.Context) (checkerboard.Options, error) {
	o := checkerboard.DefaultOptions()
	o.TileSize = c.Int("tile-size")

	var err error
	if o.Even, err = parseColor(c.String("even")); err != nil {
		return o, err
	}
	if o.Odd, err = parseColor(c.String("odd")); err != nil {
		return o, err
	}

	return o, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "rgb332"
	app.Usage = "RGB332 image conversion utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "cache",
			EnvVars: []string{"RGB332_CACHE"},
			Usage:   "path to conversion cache database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	formatFlag := &cli.StringFlag{
		Name:  "format",
		Value: image.FormatBytes.String(),
		Usage: "output layout, \"bytes\" for one byte per pixel or \"words\" for two pixels per 16-bit little-endian word",
	}

	filterFlag := &cli.StringFlag{
		Name:  "filter",
		Value: string(rgb332.FilterCubic),
		Usage: "resampling filter, one of nearest, linear, cubic or lanczos",
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert an image to a raw 320x200 RGB332 frame",
			Description: "",
			ArgsUsage:   "FILE OUTPUT",
			Flags:       []cli.Flag{formatFlag, filterFlag},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				f, err := image.ParseFormat(c.String("format"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				r, cache, err := newConverter(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer cache.Close()

				n, err := r.ConvertFile(c.Args().Get(0), c.Args().Get(1), f)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				fmt.Printf("Written %d bytes to %s\n", n, c.Args().Get(1))

				return nil
			},
		},
		{
			Name:        "checkerboard",
			Usage:       "Generate a checkerboard test pattern",
			Description: "",
			ArgsUsage:   "[OUTPUT]",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "tile-size",
					Value: checkerboard.DefaultOptions().TileSize,
					Usage: "tile size in pixels",
				},
				&cli.StringFlag{
					Name:  "even",
					Value: hexColor(checkerboard.DefaultOptions().Even),
					Usage: "RGB332 color of the top left tile, as hex",
				},
				&cli.StringFlag{
					Name:  "odd",
					Value: hexColor(checkerboard.DefaultOptions().Odd),
					Usage: "RGB332 color of the alternate tiles, as hex",
				},
			},
			Action: func(c *cli.Context) error {
				output := defaultCheckerboard
				if c.NArg() > 0 {
					output = c.Args().First()
				}

				o, err := checkerboardOptions(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				p, err := checkerboard.Generate(o)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				f, err := os.Create(output)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer f.Close()

				n, err := f.Write(image.SerializeBytes(p))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				fmt.Printf("Written %d bytes to %s\n", n, output)

				return nil
			},
		},
		{
			Name:        "color",
			Usage:       "Convert 24-bit hex colors to RGB332",
			Description: "",
			ArgsUsage:   "HEX...",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				for _, arg := range c.Args().Slice() {
					v, err := pixel.PackInput(pixel.Hex(arg))
					if err != nil {
						return cli.NewExitError(err, 1)
					}
					fmt.Printf("RGB332 value: 0x%02X\n", v)
				}

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Convert every image under a directory",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Flags:       []cli.Flag{formatFlag, filterFlag},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				f, err := image.ParseFormat(c.String("format"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				r, cache, err := newConverter(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer cache.Close()

				if err := r.Scan(c.Args().First(), f); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
