//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the viewer in a window with assets/config.toml.
func (Run) Viewer() error {
	fmt.Println("Run viewer...")
	if _, err := executeCmd("go", withArgs("run", ".", "-config", "assets/config.toml"), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs ten seconds worth of frames without a window.
func (Run) Headless() error {
	mg.Deps(Build.Binary)
	fmt.Println("Run headless viewer...")
	if _, err := executeCmd("bin/vitrum", withArgs("-headless", "-frames", "600"), withStream()); err != nil {
		return err
	}
	return nil
}
