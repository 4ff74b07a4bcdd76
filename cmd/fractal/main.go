// Command fractal is an interactive Mandelbrot viewer built on the
// fractal rendering engine.
//
// Controls: arrow keys pan, =/- and the mouse wheel zoom, the number
// keys 1-9 switch color schemes, Escape quits. The window is resizable.
//
// Startup options come from flags, optionally layered over a JSON
// config file:
//
//	fractal -width 1024 -height 768 -scheme rainbow
//	fractal -config viewer.json -iterations 500
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/gogpu/fractal"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("fractal: %v", err)
	}
}

func run() error {
	var (
		configPath  = flag.String("config", "", "JSON config file")
		width       = flag.Int("width", 800, "window width in pixels")
		height      = flag.Int("height", 600, "window height in pixels")
		iterations  = flag.Int("iterations", 200, "escape-time iteration budget")
		scheme      = flag.String("scheme", fractal.SchemeBlackAndWhite.String(), "color scheme name")
		landmark    = flag.String("landmark", "", "start at a named landmark region")
		progressive = flag.Bool("progressive", true, "refine coarse-to-fine instead of full passes")
		stride      = flag.Int("stride", 8, "initial sampling stride for progressive mode")
		workers     = flag.Int("workers", 0, "render worker count (0 = GOMAXPROCS)")
		fullscreen  = flag.Bool("fullscreen", false, "start in borderless fullscreen")
		verbose     = flag.Bool("verbose", false, "log render diagnostics to stderr")
	)
	flag.Parse()

	if *verbose {
		fractal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath, cfg); err != nil {
			return err
		}
	}

	// Flags set explicitly on the command line override the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "iterations":
			cfg.MaxIterations = *iterations
		case "scheme":
			cfg.ColorScheme = *scheme
		case "landmark":
			cfg.Landmark = *landmark
			cfg.Region = nil
		case "progressive":
			cfg.Progressive = *progressive
		case "stride":
			cfg.InitialStride = *stride
		case "workers":
			cfg.Workers = *workers
		case "fullscreen":
			cfg.Fullscreen = *fullscreen
		}
	})

	opts, err := cfg.rendererOptions()
	if err != nil {
		return err
	}
	r, err := fractal.New(cfg.Width, cfg.Height, opts...)
	if err != nil {
		return err
	}
	defer r.Close()

	return runViewer(r, cfg)
}

// viewer owns the SDL window and the streaming texture the framebuffer
// is blitted through.
type viewer struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	texW     int
	texH     int
	winW     int
	winH     int
}

func newViewer(width, height int, fullscreen bool) (*viewer, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE)
	if fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	window, err := sdl.CreateWindow(
		"Fractals",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height), flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	w, h := window.GetSize()
	return &viewer{
		window:   window,
		renderer: renderer,
		winW:     int(w),
		winH:     int(h),
	}, nil
}

func (v *viewer) close() {
	if v.texture != nil {
		v.texture.Destroy()
	}
	v.renderer.Destroy()
	v.window.Destroy()
	sdl.Quit()
}

// present blits the framebuffer to the window, scaling CPU-side when a
// live resize has moved the window size away from the render size.
func (v *viewer) present(fb *fractal.Framebuffer) error {
	frame := fb.ToImage()
	if fb.Width() != v.winW || fb.Height() != v.winH {
		frame = scaleFrame(frame, v.winW, v.winH)
	}

	w := frame.Bounds().Dx()
	h := frame.Bounds().Dy()
	if v.texture == nil || v.texW != w || v.texH != h {
		if v.texture != nil {
			v.texture.Destroy()
		}
		t, err := v.renderer.CreateTexture(
			sdl.PIXELFORMAT_RGBA32,
			sdl.TEXTUREACCESS_STREAMING,
			int32(w), int32(h),
		)
		if err != nil {
			return fmt.Errorf("create texture: %w", err)
		}
		v.texture = t
		v.texW = w
		v.texH = h
	}

	if err := v.texture.Update(nil, frame.Pix, frame.Stride); err != nil {
		return fmt.Errorf("update texture: %w", err)
	}
	if err := v.renderer.Copy(v.texture, nil, nil); err != nil {
		return fmt.Errorf("copy texture: %w", err)
	}
	v.renderer.Present()
	return nil
}

// runViewer drives the event/render loop: drain pending input, apply
// mutations, then compute at most one refinement pass per lap so the
// loop stays responsive between passes.
func runViewer(r *fractal.Renderer, cfg config) error {
	v, err := newViewer(cfg.Width, cfg.Height, cfg.Fullscreen)
	if err != nil {
		return err
	}
	defer v.close()

	schemes := fractal.Schemes()

	for {
		for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
			switch t := e.(type) {
			case *sdl.QuitEvent:
				return nil

			case *sdl.KeyboardEvent:
				if t.Type != sdl.KEYDOWN {
					break
				}
				switch t.Keysym.Sym {
				case sdl.K_ESCAPE:
					return nil
				case sdl.K_UP:
					r.Pan(0, -1)
				case sdl.K_DOWN:
					r.Pan(0, 1)
				case sdl.K_LEFT:
					r.Pan(-1, 0)
				case sdl.K_RIGHT:
					r.Pan(1, 0)
				case sdl.K_EQUALS, sdl.K_KP_PLUS:
					r.Zoom(true)
				case sdl.K_MINUS, sdl.K_KP_MINUS:
					r.Zoom(false)
				default:
					if n := int(t.Keysym.Sym - sdl.K_1); n >= 0 && n < len(schemes) {
						if err := r.SetScheme(schemes[n]); err != nil {
							return err
						}
					}
				}

			case *sdl.MouseWheelEvent:
				if t.Y != 0 {
					r.Zoom(t.Y > 0)
				}

			case *sdl.WindowEvent:
				switch t.Event {
				case sdl.WINDOWEVENT_SIZE_CHANGED:
					v.winW = int(t.Data1)
					v.winH = int(t.Data2)
				case sdl.WINDOWEVENT_RESIZED:
					if err := r.Resize(int(t.Data1), int(t.Data2)); err != nil {
						return err
					}
				}
			}
		}

		if r.Scanning() {
			r.Render()
			if err := v.present(r.Framebuffer()); err != nil {
				return err
			}
		} else {
			sdl.Delay(10)
		}
	}
}
