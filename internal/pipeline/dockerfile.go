// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package pipeline

import (
	"fmt"
	"strings"
)

// EmitDockerfile renders the recipe as a Dockerfile. The pipeline is
// validated first, so an unbuildable or non-compliant recipe never
// reaches disk. Output is deterministic.
func (p *Pipeline) EmitDockerfile() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var b strings.Builder
	if p.Syntax != "" {
		fmt.Fprintf(&b, "# syntax=%s\n", p.Syntax)
	}

	for _, s := range p.Stages {
		b.WriteString("\n")
		fmt.Fprintf(&b, "FROM %s AS %s\n", s.Base, s.Name)

		var prev Kind
		for i, in := range s.Instructions {
			if i > 0 && blankBefore(in, prev) {
				b.WriteString("\n")
			}
			writeInstruction(&b, in)
			prev = in.Kind
		}
	}

	return []byte(b.String()), nil
}

// blankBefore separates layer groups: each COPY run opens a new group,
// and the USER switch stands alone at the end of the runtime stage.
func blankBefore(in Instruction, prev Kind) bool {
	switch in.Kind {
	case KindCopy:
		return prev != KindCopy
	case KindUser:
		return true
	}
	return false
}

func writeInstruction(b *strings.Builder, in Instruction) {
	switch in.Kind {
	case KindWorkdir:
		fmt.Fprintf(b, "WORKDIR %s\n", in.Dst)
	case KindUser:
		fmt.Fprintf(b, "USER %s\n", in.Dst)
	case KindCopy:
		if in.From != "" {
			fmt.Fprintf(b, "COPY --from=%s %s %s\n", in.From, in.Src[0], in.Dst)
			return
		}
		fmt.Fprintf(b, "COPY %s %s\n", strings.Join(in.Src, " "), in.Dst)
	case KindEnv:
		fmt.Fprintf(b, "ENV %s=%s\n", in.Key, in.Value)
	case KindArg:
		if in.Value != "" {
			fmt.Fprintf(b, "ARG %s=%s\n", in.Key, in.Value)
			return
		}
		fmt.Fprintf(b, "ARG %s\n", in.Key)
	case KindRun:
		if len(in.CacheMounts) == 0 {
			fmt.Fprintf(b, "RUN %s\n", in.Cmd)
			return
		}
		b.WriteString("RUN")
		for _, m := range in.CacheMounts {
			fmt.Fprintf(b, " --mount=type=cache,target=%s \\\n   ", m)
		}
		fmt.Fprintf(b, " %s\n", in.Cmd)
	}
}
