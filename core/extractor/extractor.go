package extractor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/wakabaloola/visualise-code-structure/core/logger"
	"github.com/wakabaloola/visualise-code-structure/core/models"
)

type Options struct {
	Verbosity  int
	Docstrings bool
}

// IsPythonFile reports whether path looks like a Python source file.
func IsPythonFile(path string) bool {
	switch filepath.Ext(path) {
	case ".py", ".pyi":
		return true
	}
	return false
}

// ParseFile reads and parses one source file. A file that cannot be read or
// parsed yields an error carrying the file path; it never aborts the caller.
func ParseFile(ctx context.Context, path string, opts Options) (*models.FileStructure, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Extract(ctx, src, path, opts)
}

// Extract parses src and builds the per-file outline. Each top-level and
// class-nested function definition is recorded exactly once, in source order.
func Extract(ctx context.Context, src []byte, path string, opts Options) (*models.FileStructure, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("failed to parse %s: no syntax tree produced", path)
	}
	if root.HasError() {
		return nil, fmt.Errorf("failed to parse %s: source contains syntax errors", path)
	}

	logger.Debug("Parsed %s (%d bytes)", path, len(src))

	v := &visitor{
		src:  src,
		opts: opts,
		out:  models.NewFileStructure(path),
	}
	if opts.Docstrings {
		v.out.Docstring = docstring(root, src)
	}
	v.walk(root)

	return v.out, nil
}

// visitor carries a single current-class cursor: set on entering a class
// body, cleared (not restored) on leaving it. A class defined inside another
// class therefore overwrites the cursor and later definitions fall back to
// top-level. This mirrors the tool's original behavior for nested classes.
type visitor struct {
	src          []byte
	opts         Options
	out          *models.FileStructure
	currentClass string
}

func (v *visitor) walk(node *sitter.Node) {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "function_definition":
			v.function(child)
		case "class_definition":
			v.class(child)
		default:
			v.walk(child)
		}
	}
}

func (v *visitor) class(node *sitter.Node) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	name := v.text(nameNode)

	cls := models.NewClassRecord(name)
	body := node.ChildByFieldName("body")
	if v.opts.Docstrings && body != nil {
		cls.Docstring = docstring(body, v.src)
	}
	v.out.Classes[name] = cls

	if body != nil {
		v.currentClass = name
		v.walk(body)
	}
	v.currentClass = ""
}

func (v *visitor) function(node *sitter.Node) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}

	sig := models.SignatureInfo{
		Name:      v.text(nameNode),
		Arguments: v.parameters(node.ChildByFieldName("parameters")),
	}
	if ret := node.ChildByFieldName("return_type"); ret != nil {
		sig.Returns = v.text(ret)
	}

	body := node.ChildByFieldName("body")
	if v.opts.Docstrings && body != nil {
		sig.Docstring = docstring(body, v.src)
	}

	rec := models.FunctionRecord{
		Name:      sig.Name,
		Signature: sig.Format(v.opts.Verbosity),
		Docstring: sig.Docstring,
	}

	if v.currentClass != "" {
		if cls, ok := v.out.Classes[v.currentClass]; ok {
			cls.Methods[rec.Name] = rec
		}
	} else {
		v.out.Functions = append(v.out.Functions, rec)
	}

	if body != nil {
		v.walk(body)
	}
}

// parameters extracts name, annotation, and default-value source text for
// every parameter. Defaults live on the parameter nodes that declare them,
// so only the trailing run of defaulted parameters ever carries one.
func (v *visitor) parameters(node *sitter.Node) []models.Argument {
	if node == nil {
		return nil
	}

	var args []models.Argument
	for i := 0; i < int(node.NamedChildCount()); i++ {
		param := node.NamedChild(i)
		switch param.Type() {
		case "identifier", "list_splat_pattern", "dictionary_splat_pattern", "tuple_pattern":
			args = append(args, models.Argument{Name: v.text(param)})
		case "typed_parameter":
			arg := models.Argument{}
			if param.NamedChildCount() > 0 {
				arg.Name = v.text(param.NamedChild(0))
			}
			if typ := param.ChildByFieldName("type"); typ != nil {
				arg.Type = v.text(typ)
			}
			args = append(args, arg)
		case "default_parameter":
			arg := models.Argument{}
			if name := param.ChildByFieldName("name"); name != nil {
				arg.Name = v.text(name)
			}
			if val := param.ChildByFieldName("value"); val != nil {
				arg.Default = v.text(val)
			}
			args = append(args, arg)
		case "typed_default_parameter":
			arg := models.Argument{}
			if name := param.ChildByFieldName("name"); name != nil {
				arg.Name = v.text(name)
			}
			if typ := param.ChildByFieldName("type"); typ != nil {
				arg.Type = v.text(typ)
			}
			if val := param.ChildByFieldName("value"); val != nil {
				arg.Default = v.text(val)
			}
			args = append(args, arg)
		case "keyword_separator":
			args = append(args, models.Argument{Name: "*"})
		case "positional_separator":
			args = append(args, models.Argument{Name: "/"})
		}
	}
	return args
}

func (v *visitor) text(node *sitter.Node) string {
	return string(v.src[node.StartByte():node.EndByte()])
}

// docstring returns the string literal that opens a block, if any.
func docstring(block *sitter.Node, src []byte) string {
	for i := 0; i < int(block.NamedChildCount()); i++ {
		child := block.NamedChild(i)
		if child.Type() == "comment" {
			continue
		}
		if child.Type() != "expression_statement" || child.NamedChildCount() == 0 {
			return ""
		}
		strNode := child.NamedChild(0)
		if strNode.Type() != "string" {
			return ""
		}
		raw := string(src[strNode.StartByte():strNode.EndByte()])
		return strings.TrimSpace(strings.Trim(raw, `"'`))
	}
	return ""
}
