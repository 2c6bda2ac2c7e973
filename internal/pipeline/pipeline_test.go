// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package pipeline

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestDefaultValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default pipeline invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Pipeline)
		wantErr string
	}{
		{
			"single stage",
			func(p *Pipeline) { p.Stages = p.Stages[:1] },
			"need a builder and a runtime stage",
		},
		{
			"duplicate stage name",
			func(p *Pipeline) { p.Stages[1].Name = "builder" },
			"duplicate stage name",
		},
		{
			"start command baked in",
			func(p *Pipeline) {
				p.Stages[1].Instructions = append(p.Stages[1].Instructions,
					Instruction{Kind: KindCmd, Cmd: "/app/scrollery"})
			},
			"start command",
		},
		{
			"runtime on toolchain image",
			func(p *Pipeline) { p.Stages[1].Base = "golang:1.25" },
			"toolchain image",
		},
		{
			"runtime as root",
			func(p *Pipeline) {
				for i, in := range p.Stages[1].Instructions {
					if in.Kind == KindUser {
						p.Stages[1].Instructions[i].Dst = "root"
					}
				}
			},
			"non-root user",
		},
		{
			"runtime without user",
			func(p *Pipeline) {
				kept := p.Stages[1].Instructions[:0]
				for _, in := range p.Stages[1].Instructions {
					if in.Kind != KindUser {
						kept = append(kept, in)
					}
				}
				p.Stages[1].Instructions = kept
			},
			"non-root user",
		},
		{
			"cache mount in runtime",
			func(p *Pipeline) {
				p.Stages[1].Instructions = append(p.Stages[1].Instructions,
					Run("apt-get update", "/var/cache/apt"))
			},
			"cache mounts",
		},
		{
			"copy from later stage",
			func(p *Pipeline) {
				p.Stages[0].Instructions = append(p.Stages[0].Instructions,
					CopyFrom("runtime", "/app/scrollery", "/tmp/x"))
			},
			"later stage",
		},
		{
			"undeclared artifact",
			func(p *Pipeline) {
				p.Stages[1].Instructions = append(p.Stages[1].Instructions,
					CopyFrom("builder", "/src/secret", "/app/secret"))
			},
			"undeclared artifact",
		},
		{
			"source before manifest",
			func(p *Pipeline) {
				p.Stages[0].Instructions = []Instruction{
					Workdir("/src"),
					Copy("./", "."),
					Run("go build ./..."),
				}
			},
			"before the dependency manifest",
		},
		{
			"relative cache mount",
			func(p *Pipeline) {
				p.Stages[0].Instructions = append(p.Stages[0].Instructions,
					Run("true", "relative/path"))
			},
			"must be absolute",
		},
		{
			"nameless env",
			func(p *Pipeline) {
				p.Stages[1].Instructions = append(p.Stages[1].Instructions,
					Env("", "value"))
			},
			"without a name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.mutate(p)
			err := p.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestEmitDockerfileDeterministic(t *testing.T) {
	first, err := Default().EmitDockerfile()
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	second, err := Default().EmitDockerfile()
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("repeated emits differ")
	}
}

// The checked-in Dockerfile is generated; this keeps it honest.
func TestEmitDockerfileMatchesCheckedIn(t *testing.T) {
	want, err := os.ReadFile("../../Dockerfile")
	if err != nil {
		t.Fatalf("read Dockerfile: %v", err)
	}

	got, err := Default().EmitDockerfile()
	if err != nil {
		t.Fatalf("emit: %v", err)
	}

	if !bytes.Equal(got, want) {
		t.Errorf("Dockerfile is stale; regenerate it\n--- emitted ---\n%s", got)
	}
}

func TestEmitDockerfileShape(t *testing.T) {
	out, err := Default().EmitDockerfile()
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	text := string(out)

	if !strings.HasPrefix(text, "# syntax=docker/dockerfile:1\n") {
		t.Error("missing syntax header")
	}
	if strings.Contains(text, "CMD") || strings.Contains(text, "ENTRYPOINT") {
		t.Error("image must not declare a start command")
	}
	if got := strings.Count(text, "FROM "); got != 2 {
		t.Errorf("expected 2 stages, found %d FROM lines", got)
	}
	if got := strings.Count(text, "--mount=type=cache"); got != 3 {
		t.Errorf("expected 3 cache mounts, found %d", got)
	}
	if !strings.Contains(text, "USER scrollery\n") {
		t.Error("runtime stage must drop privileges")
	}
}

func TestEmitEnvAndArg(t *testing.T) {
	p := Default()
	p.Stages[0].Instructions = append(
		[]Instruction{Arg("GO_VERSION", "1.25")}, p.Stages[0].Instructions...)
	p.Stages[1].Instructions = append(
		p.Stages[1].Instructions[:len(p.Stages[1].Instructions)-1],
		Env("APP_ENV", "production"),
		User("scrollery"))

	out, err := p.EmitDockerfile()
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	text := string(out)

	if !strings.Contains(text, "ARG GO_VERSION=1.25\n") {
		t.Error("missing build arg")
	}
	if !strings.Contains(text, "ENV APP_ENV=production\n") {
		t.Error("missing env")
	}
}

func TestEmitDockerfileRejectsInvalid(t *testing.T) {
	p := Default()
	p.Stages = p.Stages[:1]
	if _, err := p.EmitDockerfile(); err == nil {
		t.Error("expected emit to fail validation")
	}
}
