package dataset

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/JeanKossaifi/videobrowser/domain/landmarks"

	_ "image/jpeg"
	_ "image/png"
)

// Report is the machine readable result of a dataset validation pass.
type Report struct {
	Root   string        `yaml:"root"`
	Videos []VideoReport `yaml:"videos"`
	Frames int           `yaml:"frames"`
	Valid  bool          `yaml:"valid"`
}

// VideoReport describes one video folder. Width and Height are taken from
// the first decodable frame.
type VideoReport struct {
	Name     string   `yaml:"name"`
	Frames   int      `yaml:"frames"`
	Bytes    int64    `yaml:"size_bytes"`
	Width    int      `yaml:"width,omitempty"`
	Height   int      `yaml:"height,omitempty"`
	Warnings []string `yaml:"warnings,omitempty"`
	Errors   []string `yaml:"errors,omitempty"`
}

// Check validates every frame pair under root without building collections:
// image headers must decode and annotation files must parse. It keeps going
// past broken videos so the report covers the whole dataset. onFrame, when
// not nil, is called once per inspected frame.
func Check(root string, opts Options, onFrame func()) (*Report, error) {
	opts = opts.withDefaults()
	infos, err := Discover(root, opts)
	if err != nil {
		return nil, err
	}

	report := &Report{Root: root, Valid: true}
	for _, info := range infos {
		vr := VideoReport{Name: info.Name, Bytes: info.Bytes}
		dir := filepath.Join(root, info.Name)
		refs, err := pairFrames(dir, opts)
		if err != nil {
			vr.Errors = append(vr.Errors, err.Error())
		}
		if err == nil && len(refs) == 0 {
			vr.Warnings = append(vr.Warnings, "no frame pairs, video will be skipped")
		}
		for _, ref := range refs {
			if onFrame != nil {
				onFrame()
			}
			w, h, err := decodeHeader(ref.imagePath)
			if err != nil {
				vr.Errors = append(vr.Errors, fmt.Sprintf("frame %s: %v", ref.name, err))
				continue
			}
			if vr.Width == 0 {
				vr.Width, vr.Height = w, h
			}
			if _, err := landmarks.ReadShape(ref.shapePath); err != nil {
				vr.Errors = append(vr.Errors, fmt.Sprintf("frame %s: %v", ref.name, err))
				continue
			}
			vr.Frames++
		}
		if len(vr.Errors) > 0 {
			report.Valid = false
		}
		report.Frames += vr.Frames
		report.Videos = append(report.Videos, vr)
	}
	return report, nil
}

// FrameTotal returns the number of frames Check would inspect, for sizing
// progress output up front.
func FrameTotal(root string, opts Options) (int, error) {
	infos, err := Discover(root, opts)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, info := range infos {
		total += min(info.Images, info.Shapes)
	}
	return total, nil
}

// WriteReport marshals the report to YAML at the given path.
func WriteReport(r *Report, path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func decodeHeader(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode image header: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}
