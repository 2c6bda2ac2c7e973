// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package pipeline models the container build recipe as data: an
// ordered list of stages, the artifacts crossing stage boundaries, and
// the invariants a deployable image must satisfy. The checked-in
// Dockerfile is generated from Default() and must never be edited by
// hand — run the release subcommand instead.
package pipeline

import (
	"fmt"
	"strings"
)

// Kind identifies a build instruction.
type Kind string

const (
	KindWorkdir Kind = "WORKDIR"
	KindCopy    Kind = "COPY"
	KindRun     Kind = "RUN"
	KindUser    Kind = "USER"
	KindEnv     Kind = "ENV"
	KindArg     Kind = "ARG"

	// KindCmd exists only so Validate can reject it: the start command
	// is deferred to the deployment descriptor, never baked into the
	// image.
	KindCmd Kind = "CMD"
)

// Instruction is one build instruction inside a stage. Only the fields
// relevant to its Kind are set.
type Instruction struct {
	Kind Kind

	// From names an earlier stage for cross-stage copies.
	From string

	// Src lists copy sources. For cross-stage copies it holds exactly
	// one declared artifact path.
	Src []string

	// Dst is the copy destination, working directory, or user name.
	Dst string

	// Cmd is the shell command a RUN executes.
	Cmd string

	// Key and Value hold an ENV pair or a build ARG (Value optional).
	Key   string
	Value string

	// CacheMounts lists cache-mount target directories for a RUN.
	// Mounts persist across build invocations and never end up in the
	// image.
	CacheMounts []string
}

// Workdir sets the working directory for the rest of the stage.
func Workdir(dir string) Instruction {
	return Instruction{Kind: KindWorkdir, Dst: dir}
}

// Copy copies paths from the build context into the stage.
func Copy(dst string, src ...string) Instruction {
	return Instruction{Kind: KindCopy, Src: src, Dst: dst}
}

// CopyFrom copies one artifact out of an earlier stage.
func CopyFrom(stage, src, dst string) Instruction {
	return Instruction{Kind: KindCopy, From: stage, Src: []string{src}, Dst: dst}
}

// Run executes a shell command, optionally with cache mounts.
func Run(cmd string, cacheMounts ...string) Instruction {
	return Instruction{Kind: KindRun, Cmd: cmd, CacheMounts: cacheMounts}
}

// User switches the effective user for the rest of the stage.
func User(name string) Instruction {
	return Instruction{Kind: KindUser, Dst: name}
}

// Env sets an environment variable for the rest of the stage and, in
// the runtime stage, for the running container.
func Env(key, value string) Instruction {
	return Instruction{Kind: KindEnv, Key: key, Value: value}
}

// Arg declares a build argument, optionally with a default value.
func Arg(name, def string) Instruction {
	return Instruction{Kind: KindArg, Key: name, Value: def}
}

// Stage is one container build stage: a base image plus its ordered
// instructions.
type Stage struct {
	Name         string
	Base         string
	Instructions []Instruction
}

// Artifact declares a path a stage produces for later stages to copy.
type Artifact struct {
	Stage string
	Path  string
}

// Pipeline is the whole build recipe. Stages run strictly in order;
// the last stage is the runtime image.
type Pipeline struct {
	// Syntax is the Dockerfile frontend, required for cache mounts.
	Syntax string

	Stages    []Stage
	Artifacts []Artifact
}

const (
	goModCache   = "/go/pkg/mod"
	goBuildCache = "/root/.cache/go-build"

	binaryPath = "/bin/scrollery"
	staticPath = "/src/web/static"
)

// Default returns the gallery's release pipeline: a Go builder stage
// with cache-mounted dependency download and compile, and a slim
// Debian runtime stage holding just the binary, the static assets, and
// an unprivileged user. No start command — the deployment supplies it.
func Default() *Pipeline {
	return &Pipeline{
		Syntax: "docker/dockerfile:1",
		Stages: []Stage{
			{
				Name: "builder",
				Base: "golang:1.25",
				Instructions: []Instruction{
					Workdir("/src"),
					Copy("./", "go.mod", "go.sum"),
					Run("go mod download", goModCache),
					Copy("./", "."),
					Run(`go build -trimpath -ldflags "-s -w" -o `+binaryPath+` ./cmd/scrollery`,
						goModCache, goBuildCache),
				},
			},
			{
				Name: "runtime",
				Base: "debian:bookworm-slim",
				Instructions: []Instruction{
					Run("useradd -m scrollery"),
					Workdir("/app"),
					CopyFrom("builder", binaryPath, "/app/scrollery"),
					CopyFrom("builder", staticPath, "/app/web/static"),
					User("scrollery"),
				},
			},
		},
		Artifacts: []Artifact{
			{Stage: "builder", Path: binaryPath},
			{Stage: "builder", Path: staticPath},
		},
	}
}

// Validate checks the recipe against the invariants a deployable image
// must satisfy. The final stage is treated as the runtime image.
func (p *Pipeline) Validate() error {
	if len(p.Stages) < 2 {
		return fmt.Errorf("pipeline: need a builder and a runtime stage, got %d", len(p.Stages))
	}

	seen := make(map[string]int, len(p.Stages))
	for i, s := range p.Stages {
		if s.Name == "" {
			return fmt.Errorf("pipeline: stage %d has no name", i)
		}
		if s.Base == "" {
			return fmt.Errorf("pipeline: stage %q has no base image", s.Name)
		}
		if _, dup := seen[s.Name]; dup {
			return fmt.Errorf("pipeline: duplicate stage name %q", s.Name)
		}
		seen[s.Name] = i
	}

	artifacts := make(map[Artifact]bool, len(p.Artifacts))
	for _, a := range p.Artifacts {
		if _, ok := seen[a.Stage]; !ok {
			return fmt.Errorf("pipeline: artifact %s declared by unknown stage %q", a.Path, a.Stage)
		}
		artifacts[a] = true
	}

	for i, s := range p.Stages {
		if err := p.validateStage(i, s, seen, artifacts); err != nil {
			return err
		}
	}

	return p.validateRuntime(p.Stages[len(p.Stages)-1])
}

func (p *Pipeline) validateStage(idx int, s Stage, seen map[string]int, artifacts map[Artifact]bool) error {
	manifestCopied := false
	for _, in := range s.Instructions {
		switch in.Kind {
		case KindCmd:
			return fmt.Errorf("pipeline: stage %q declares a start command; the image must leave it to the deployment", s.Name)
		case KindCopy:
			if in.From != "" {
				src, ok := seen[in.From]
				if !ok {
					return fmt.Errorf("pipeline: stage %q copies from unknown stage %q", s.Name, in.From)
				}
				if src >= idx {
					return fmt.Errorf("pipeline: stage %q copies from later stage %q", s.Name, in.From)
				}
				if len(in.Src) != 1 {
					return fmt.Errorf("pipeline: cross-stage copy in %q must name exactly one artifact", s.Name)
				}
				if !artifacts[Artifact{Stage: in.From, Path: in.Src[0]}] {
					return fmt.Errorf("pipeline: stage %q copies undeclared artifact %s from %q", s.Name, in.Src[0], in.From)
				}
				continue
			}
			for _, src := range in.Src {
				if src == "." && !manifestCopied {
					return fmt.Errorf("pipeline: stage %q copies the source tree before the dependency manifest; the download layer would never cache", s.Name)
				}
				if strings.HasPrefix(src, "go.") {
					manifestCopied = true
				}
			}
		case KindEnv, KindArg:
			if in.Key == "" {
				return fmt.Errorf("pipeline: %s without a name in stage %q", in.Kind, s.Name)
			}
		case KindRun:
			for _, m := range in.CacheMounts {
				if !strings.HasPrefix(m, "/") {
					return fmt.Errorf("pipeline: cache mount %q in stage %q must be absolute", m, s.Name)
				}
			}
		}
	}
	return nil
}

func (p *Pipeline) validateRuntime(s Stage) error {
	if strings.HasPrefix(s.Base, "golang") {
		return fmt.Errorf("pipeline: runtime stage %q ships the toolchain image %q", s.Name, s.Base)
	}

	var user, workdir string
	for _, in := range s.Instructions {
		switch in.Kind {
		case KindUser:
			user = in.Dst
		case KindWorkdir:
			workdir = in.Dst
		case KindRun:
			if len(in.CacheMounts) > 0 {
				return fmt.Errorf("pipeline: runtime stage %q uses build cache mounts", s.Name)
			}
		}
	}

	if user == "" || user == "root" {
		return fmt.Errorf("pipeline: runtime stage %q must run as a dedicated non-root user", s.Name)
	}
	if workdir == "" {
		return fmt.Errorf("pipeline: runtime stage %q has no working directory", s.Name)
	}
	return nil
}
