package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
)

// profile is the on-disk form of a bench profile:
//
//	[parallel]
//	threshold = 10000
//	timeout = "5s"
//	policy = "lowest-index"
//	order = "forward"
//	check_interval = 4096
//
//	[sweep]
//	sizes = [1000, 100000, 10000000]
//	reps = 5
//
// Every key is optional. Values only fill flags the user did not set.
type profile struct {
	Parallel parallelProfile `toml:"parallel"`
	Sweep    sweepProfile    `toml:"sweep"`
}

type parallelProfile struct {
	Threshold     *int   `toml:"threshold"`
	Timeout       string `toml:"timeout"`
	Policy        string `toml:"policy"`
	Order         string `toml:"order"`
	CheckInterval *int   `toml:"check_interval"`
}

type sweepProfile struct {
	Sizes []int `toml:"sizes"`
	Reps  *int  `toml:"reps"`
}

func loadProfile(path string) (*profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	var p profile
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	if p.Parallel.Timeout != "" {
		if _, err := time.ParseDuration(p.Parallel.Timeout); err != nil {
			return nil, fmt.Errorf("profile %s: parallel.timeout: %w", path, err)
		}
	}
	return &p, nil
}

// fill sets flag name from value unless the user set it explicitly.
func fill(fs *pflag.FlagSet, name, value string) error {
	if value == "" || fs.Changed(name) {
		return nil
	}
	if err := fs.Set(name, value); err != nil {
		return fmt.Errorf("profile value for --%s: %w", name, err)
	}
	return nil
}

func fillInt(fs *pflag.FlagSet, name string, value *int) error {
	if value == nil {
		return nil
	}
	return fill(fs, name, fmt.Sprint(*value))
}
