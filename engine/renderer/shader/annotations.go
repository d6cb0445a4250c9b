// annotations.go defines the annotation types and parser for the glue GLSL shader
// pre-processor. Annotations are single-line GLSL comments prefixed with @glue: that
// inject shared uniform blocks, inject compile-time defines, and flag a program as
// following the shared vertex attribute layout.
package shader

import (
	"fmt"
	"slices"
	"strings"
)

// annotationPrefix is the marker that identifies a glue annotation within a GLSL comment line.
const annotationPrefix = "@glue:"

// AnnotationType identifies the kind of annotation parsed from a GLSL comment line.
type AnnotationType string

const (
	// AnnotationTypeInclude injects the GLSL source of a registered chunk at the annotation site.
	//
	// Syntax: //@glue:include <chunk>
	//
	// Example: //@glue:include lights
	AnnotationTypeInclude AnnotationType = "include"

	// AnnotationTypeDefine emits a #define at the annotation site.
	//
	// Syntax: //@glue:define <NAME> [value]
	AnnotationTypeDefine AnnotationType = "define"

	// AnnotationTypeShared marks the program as binding its vertex inputs to the shared
	// attribute layout. It produces no GLSL output.
	//
	// Syntax: //@glue:shared
	AnnotationTypeShared AnnotationType = "shared"
)

// Annotation represents a single parsed @glue: annotation.
type Annotation struct {
	// Type identifies which annotation was parsed.
	Type AnnotationType

	// Args holds the annotation's arguments:
	//   - include: [0] = chunk key
	//   - define:  [0] = name, [1] = value (optional)
	//   - shared:  none
	Args []AnnotationArg

	// Line is the 1-based line number in the original source.
	Line int
}

// AnnotationArg is a typed string used as an annotation argument.
type AnnotationArg string

const (
	// AnnotationArgCamera identifies the camera uniforms.
	// Source: engine/camera/assets/camera.glsl
	AnnotationArgCamera AnnotationArg = "camera"

	// AnnotationArgLights identifies the light structs, light arrays and uLightSize.
	// Source: engine/light/assets/lights.glsl
	AnnotationArgLights AnnotationArg = "lights"

	// AnnotationArgAttributes identifies the shared vertex attribute inputs.
	// Source: engine/geometry/assets/attributes.glsl
	AnnotationArgAttributes AnnotationArg = "attributes"

	// AnnotationArgModel identifies the per-mesh model matrices.
	// Source: engine/renderer/shader/assets/model.glsl
	AnnotationArgModel AnnotationArg = "model"
)

var validChunks = []AnnotationArg{
	AnnotationArgCamera,
	AnnotationArgLights,
	AnnotationArgAttributes,
	AnnotationArgModel,
}

// parseAnnotation attempts to parse a single source line as a @glue: annotation.
// Lines that are not annotations return (nil, nil).
//
// Parameters:
//   - line: the raw source line
//   - lineNum: the 1-based line number for error reporting
//
// Returns:
//   - *Annotation: the parsed annotation, or nil if the line is not an annotation
//   - error: a descriptive error if the annotation is malformed
func parseAnnotation(line string, lineNum int) (*Annotation, error) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "//") {
		return nil, nil
	}
	_, after, ok := strings.Cut(trimmed, annotationPrefix)
	if !ok {
		return nil, nil
	}

	args := strings.Fields(after)
	if len(args) == 0 {
		return nil, fmt.Errorf("line %d: empty @glue annotation", lineNum)
	}

	switch args[0] {
	case string(AnnotationTypeInclude):
		if len(args) != 2 {
			return nil, fmt.Errorf("line %d: @glue include annotation requires exactly one argument", lineNum)
		}
		if !slices.Contains(validChunks, AnnotationArg(args[1])) {
			return nil, fmt.Errorf("line %d: unknown chunk %q in @glue include annotation", lineNum, args[1])
		}
		return &Annotation{
			Type: AnnotationTypeInclude,
			Args: []AnnotationArg{AnnotationArg(args[1])},
			Line: lineNum,
		}, nil
	case string(AnnotationTypeDefine):
		if len(args) < 2 || len(args) > 3 {
			return nil, fmt.Errorf("line %d: @glue define annotation requires a name and an optional value", lineNum)
		}
		defArgs := make([]AnnotationArg, 0, 2)
		for _, a := range args[1:] {
			defArgs = append(defArgs, AnnotationArg(a))
		}
		return &Annotation{
			Type: AnnotationTypeDefine,
			Args: defArgs,
			Line: lineNum,
		}, nil
	case string(AnnotationTypeShared):
		if len(args) != 1 {
			return nil, fmt.Errorf("line %d: @glue shared annotation takes no arguments", lineNum)
		}
		return &Annotation{Type: AnnotationTypeShared, Line: lineNum}, nil
	default:
		return nil, fmt.Errorf("line %d: unknown @glue annotation type %q", lineNum, args[0])
	}
}
