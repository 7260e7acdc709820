package models

import (
	"fmt"
	"strings"
)

// Verbosity levels for signature formatting.
const (
	VerbosityNames     = 0 // bare function name
	VerbosityArgs      = 1 // name + argument names with defaults
	VerbosityArgsTypes = 2 // level 1 plus annotations and return type
	VerbosityTypes     = 3 // types only, argument names omitted
)

type Argument struct {
	Name    string `json:"name"`
	Type    string `json:"type,omitempty"`
	Default string `json:"default,omitempty"`
}

// separator arguments ("*" and "/") carry no type and render literally.
func (a Argument) isSeparator() bool {
	return a.Name == "*" || a.Name == "/"
}

type SignatureInfo struct {
	Name      string     `json:"name"`
	Arguments []Argument `json:"arguments,omitempty"`
	Returns   string     `json:"returns,omitempty"`
	Docstring string     `json:"docstring,omitempty"`
}

// Format renders the signature at the given verbosity level. Unknown levels
// fall back to the bare name.
func (s SignatureInfo) Format(verbosity int) string {
	switch verbosity {
	case VerbosityArgs:
		parts := make([]string, 0, len(s.Arguments))
		for _, arg := range s.Arguments {
			part := arg.Name
			if arg.Default != "" {
				part += "=" + arg.Default
			}
			parts = append(parts, part)
		}
		return fmt.Sprintf("%s(%s)", s.Name, strings.Join(parts, ", "))
	case VerbosityArgsTypes:
		parts := make([]string, 0, len(s.Arguments))
		for _, arg := range s.Arguments {
			part := arg.Name
			if arg.Type != "" {
				part += ": " + arg.Type
			}
			if arg.Default != "" {
				part += "=" + arg.Default
			}
			parts = append(parts, part)
		}
		sig := fmt.Sprintf("%s(%s)", s.Name, strings.Join(parts, ", "))
		if s.Returns != "" {
			sig += " -> " + s.Returns
		}
		return sig
	case VerbosityTypes:
		parts := make([]string, 0, len(s.Arguments))
		for _, arg := range s.Arguments {
			switch {
			case arg.isSeparator():
				parts = append(parts, arg.Name)
			case arg.Type != "":
				parts = append(parts, arg.Type)
			default:
				parts = append(parts, "?")
			}
		}
		sig := fmt.Sprintf("%s(%s)", s.Name, strings.Join(parts, ", "))
		if s.Returns != "" {
			sig += " -> " + s.Returns
		}
		return sig
	default:
		return s.Name
	}
}

type FunctionRecord struct {
	Name      string `json:"name"`
	Signature string `json:"signature"`
	Docstring string `json:"docstring,omitempty"`
}

type ClassRecord struct {
	Name      string                    `json:"name"`
	Docstring string                    `json:"docstring,omitempty"`
	Methods   map[string]FunctionRecord `json:"methods"`
}

func NewClassRecord(name string) *ClassRecord {
	return &ClassRecord{
		Name:    name,
		Methods: make(map[string]FunctionRecord),
	}
}

// FileStructure is the per-file outline: top-level functions in source order
// plus classes with their methods. A fresh value is built on every parse.
type FileStructure struct {
	Path      string                  `json:"path"`
	Docstring string                  `json:"docstring,omitempty"`
	Functions []FunctionRecord        `json:"functions"`
	Classes   map[string]*ClassRecord `json:"classes"`
}

func NewFileStructure(path string) *FileStructure {
	return &FileStructure{
		Path:      path,
		Functions: []FunctionRecord{},
		Classes:   make(map[string]*ClassRecord),
	}
}

// Report is the aggregate result of one run, used for JSON output.
type Report struct {
	Files  []*FileStructure `json:"files"`
	Errors []string         `json:"errors,omitempty"`
}
