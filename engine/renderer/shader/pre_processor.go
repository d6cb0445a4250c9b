// pre_processor.go implements the glue GLSL shader pre-processor. It scans shader
// source code for @glue: annotations, replaces them with registered GLSL chunks or
// #define lines, and records the annotations so the shader can report whether it
// follows the shared attribute layout.
//
// Chunks are owned by the packages that produce their uniform data (camera, light,
// geometry) so that uniform names stay next to the Go code that fills them.
package shader

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/Carmen-Shannon/glue/engine/camera"
	"github.com/Carmen-Shannon/glue/engine/geometry"
	"github.com/Carmen-Shannon/glue/engine/light"
)

// GLSLModelSource declares the per-mesh model matrices uploaded before every draw.
//
//go:embed assets/model.glsl
var GLSLModelSource string

// preProcessor is the implementation of the PreProcessor interface.
type preProcessor struct {
	// chunkRegistry maps include keys to GLSL source text.
	chunkRegistry map[AnnotationArg]string

	// declarations accumulates every annotation seen during a Process call.
	declarations []Annotation
}

// PreProcessor processes raw GLSL shader source containing @glue: annotations.
type PreProcessor interface {
	// Process replaces @glue: annotations with their GLSL output and injects the given
	// defines directly after the #version directive (or at the top when there is none).
	// The declarations list is reset at the start of each call.
	//
	// Parameters:
	//   - source: the raw GLSL source
	//   - defines: extra #define entries; an empty value emits a bare #define
	//
	// Returns:
	//   - string: the processed source
	//   - error: an error if any annotation is malformed
	Process(source string, defines map[string]string) (string, error)

	// Declarations returns the annotations collected during the most recent Process call, in source order.
	//
	// Returns:
	//   - []Annotation: the collected annotations
	Declarations() []Annotation

	// Shared reports whether the most recent Process call saw a @glue:shared annotation.
	//
	// Returns:
	//   - bool: true if the source opted into the shared attribute layout
	Shared() bool
}

var _ PreProcessor = &preProcessor{}

// NewPreProcessor creates a PreProcessor with the engine's GLSL chunks registered.
//
// Returns:
//   - PreProcessor: a ready-to-use pre-processor instance
func NewPreProcessor() PreProcessor {
	return &preProcessor{
		chunkRegistry: map[AnnotationArg]string{
			AnnotationArgCamera:     camera.GLSLCameraSource,
			AnnotationArgLights:     light.GLSLLightsSource,
			AnnotationArgAttributes: geometry.GLSLAttributesSource,
			AnnotationArgModel:      GLSLModelSource,
		},
	}
}

func (p *preProcessor) Process(source string, defines map[string]string) (string, error) {
	p.declarations = p.declarations[:0]

	lines := strings.Split(source, "\n")
	out := make([]string, 0, len(lines)+len(defines))
	versionSeen := false

	for i, line := range lines {
		a, err := parseAnnotation(line, i+1)
		if err != nil {
			return "", err
		}
		if a == nil {
			out = append(out, line)
			if !versionSeen && strings.HasPrefix(strings.TrimSpace(line), "#version") {
				versionSeen = true
				out = append(out, defineLines(defines)...)
			}
			continue
		}

		switch a.Type {
		case AnnotationTypeInclude:
			chunk, ok := p.chunkRegistry[a.Args[0]]
			if !ok {
				return "", fmt.Errorf("line %d: unknown @glue:include argument %q", i+1, a.Args[0])
			}
			out = append(out, strings.TrimRight(chunk, "\n"))
		case AnnotationTypeDefine:
			if len(a.Args) == 2 {
				out = append(out, fmt.Sprintf("#define %s %s", a.Args[0], a.Args[1]))
			} else {
				out = append(out, fmt.Sprintf("#define %s", a.Args[0]))
			}
		case AnnotationTypeShared:
		default:
			return "", fmt.Errorf("line %d: unknown annotation type %q", i+1, a.Type)
		}
		p.declarations = append(p.declarations, *a)
	}

	if !versionSeen && len(defines) > 0 {
		out = append(defineLines(defines), out...)
	}
	return strings.Join(out, "\n"), nil
}

func (p *preProcessor) Declarations() []Annotation {
	return p.declarations
}

func (p *preProcessor) Shared() bool {
	for _, a := range p.declarations {
		if a.Type == AnnotationTypeShared {
			return true
		}
	}
	return false
}

// defineLines renders defines in sorted order so the processed source is stable.
func defineLines(defines map[string]string) []string {
	if len(defines) == 0 {
		return nil
	}
	names := make([]string, 0, len(defines))
	for name := range defines {
		names = append(names, name)
	}
	sort.Strings(names)
	lines := make([]string, 0, len(names))
	for _, name := range names {
		if v := defines[name]; v != "" {
			lines = append(lines, fmt.Sprintf("#define %s %s", name, v))
		} else {
			lines = append(lines, fmt.Sprintf("#define %s", name))
		}
	}
	return lines
}
