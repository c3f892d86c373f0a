// Package assets loads the images and sounds the game needs, once, at
// startup. Every asset is required; a missing or undecodable file is
// reported as ErrUnavailable and the program is expected to exit.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // PNG decoder for image.Decode
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/tui-artillery/internal/core"
)

// File names inside the resource directory.
const (
	TankBodyFile  = "tank_body_drawing.png"
	TankFireFile  = "tank_fire_drawing.png"
	MissileFile   = "dot.png"
	LaunchFile    = "launch.wav"
	ExplosionFile = "explosion.wav"
)

// Tank sprites are stretched to this size in playfield pixels.
const (
	TankWidth  = 50
	TankHeight = 40
)

// ErrUnavailable is wrapped by every loading failure.
var ErrUnavailable = errors.New("asset unavailable")

// colorKey marks transparent pixels in the tank body image.
var colorKey = [3]uint8{255, 0, 0}

// Registry holds every loaded asset. It is built once and shared by
// reference; nothing in it changes after Load returns.
type Registry struct {
	TankBody    *core.Sprite
	TankBurning *core.Sprite // Flames with the body drawn on top
	Missile     *core.Sprite

	Format    beep.Format // Playback format shared by all sounds
	Launch    *beep.Buffer
	Explosion *beep.Buffer
}

// Load reads all assets from dir.
func Load(dir string) (*Registry, error) {
	body, err := loadSprite(filepath.Join(dir, TankBodyFile), &colorKey)
	if err != nil {
		return nil, err
	}
	flames, err := loadSprite(filepath.Join(dir, TankFireFile), nil)
	if err != nil {
		return nil, err
	}
	dot, err := loadSprite(filepath.Join(dir, MissileFile), nil)
	if err != nil {
		return nil, err
	}

	launch, format, err := loadSound(filepath.Join(dir, LaunchFile), nil)
	if err != nil {
		return nil, err
	}
	explosion, _, err := loadSound(filepath.Join(dir, ExplosionFile), &format)
	if err != nil {
		return nil, err
	}

	return &Registry{
		TankBody:    body.Scaled(TankWidth, TankHeight),
		TankBurning: flames.Overlay(body).Scaled(TankWidth, TankHeight),
		Missile:     dot,
		Format:      format,
		Launch:      launch,
		Explosion:   explosion,
	}, nil
}

// unavailable wraps err with the asset path and ErrUnavailable.
func unavailable(path string, err error) error {
	return fmt.Errorf("assets: %s: %w: %w", filepath.Base(path), ErrUnavailable, err)
}

// loadSprite decodes an image file into a sprite. Pixels that are mostly
// transparent, or equal to key when key is set, are left transparent.
func loadSprite(path string, key *[3]uint8) (*core.Sprite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, unavailable(path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, unavailable(path, err)
	}
	return imageToSprite(img, key), nil
}

func imageToSprite(img image.Image, key *[3]uint8) *core.Sprite {
	b := img.Bounds()
	s := core.NewSprite(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			if a16 < 0x8000 {
				continue
			}
			r, g, bl := uint8(r16>>8), uint8(g16>>8), uint8(b16>>8)
			if key != nil && r == key[0] && g == key[1] && bl == key[2] {
				continue
			}
			s.SetPixel(x-b.Min.X, y-b.Min.Y, core.NearestColor(r, g, bl))
		}
	}
	return s
}

// loadSound decodes a WAV file into memory. When target is set the audio
// is resampled to its sample rate so all buffers share one format.
func loadSound(path string, target *beep.Format) (*beep.Buffer, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, unavailable(path, err)
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, beep.Format{}, unavailable(path, err)
	}
	defer streamer.Close()

	out := format
	if target != nil {
		out = *target
	}

	buf := beep.NewBuffer(out)
	if format.SampleRate != out.SampleRate {
		buf.Append(beep.Resample(4, format.SampleRate, out.SampleRate, streamer))
	} else {
		buf.Append(streamer)
	}
	if err := streamer.Err(); err != nil {
		return nil, beep.Format{}, unavailable(path, err)
	}
	return buf, out, nil
}
