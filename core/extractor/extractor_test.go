package extractor_test

import (
	"context"

	"github.com/wakabaloola/visualise-code-structure/core/extractor"
	"github.com/wakabaloola/visualise-code-structure/core/models"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const sampleSource = `"""Module doc."""

def top(x, y=1) -> int:
    """Add things."""
    return x + y

class Greeter:
    """Says hello."""

    def __init__(self, name: str):
        self.name = name

    def greet(self, loud: bool = False) -> str:
        return self.name

def tail():
    pass
`

func extract(src string, opts extractor.Options) *models.FileStructure {
	GinkgoHelper()
	structure, err := extractor.Extract(context.Background(), []byte(src), "sample.py", opts)
	Expect(err).NotTo(HaveOccurred())
	return structure
}

var _ = Describe("Extract", func() {
	It("buckets top-level functions and class methods exactly once", func() {
		structure := extract(sampleSource, extractor.Options{})

		Expect(structure.Functions).To(HaveLen(2))
		Expect(structure.Functions[0].Name).To(Equal("top"))
		Expect(structure.Functions[1].Name).To(Equal("tail"))

		Expect(structure.Classes).To(HaveKey("Greeter"))
		Expect(structure.Classes["Greeter"].Methods).To(HaveLen(2))
		Expect(structure.Classes["Greeter"].Methods).To(HaveKey("__init__"))
		Expect(structure.Classes["Greeter"].Methods).To(HaveKey("greet"))
	})

	It("renders bare names at verbosity 0", func() {
		structure := extract(sampleSource, extractor.Options{Verbosity: models.VerbosityNames})
		Expect(structure.Functions[0].Signature).To(Equal("top"))
	})

	It("renders names with defaults at verbosity 1", func() {
		structure := extract(sampleSource, extractor.Options{Verbosity: models.VerbosityArgs})
		Expect(structure.Functions[0].Signature).To(Equal("top(x, y=1)"))
	})

	It("renders annotations and return types at verbosity 2", func() {
		structure := extract(sampleSource, extractor.Options{Verbosity: models.VerbosityArgsTypes})
		Expect(structure.Functions[0].Signature).To(Equal("top(x, y=1) -> int"))

		greeter := structure.Classes["Greeter"]
		Expect(greeter.Methods["__init__"].Signature).To(Equal("__init__(self, name: str)"))
		Expect(greeter.Methods["greet"].Signature).To(Equal("greet(self, loud: bool=False) -> str"))
	})

	It("renders types or ? placeholders, never names, at verbosity 3", func() {
		structure := extract(sampleSource, extractor.Options{Verbosity: models.VerbosityTypes})
		Expect(structure.Functions[0].Signature).To(Equal("top(?, ?) -> int"))

		greeter := structure.Classes["Greeter"]
		Expect(greeter.Methods["greet"].Signature).To(Equal("greet(?, bool) -> str"))
	})

	It("attaches defaults only to the trailing arguments", func() {
		structure := extract("def f(a, b, c=1, d=2):\n    pass\n",
			extractor.Options{Verbosity: models.VerbosityArgs})
		Expect(structure.Functions[0].Signature).To(Equal("f(a, b, c=1, d=2)"))
	})

	It("captures default expressions as literal source text", func() {
		structure := extract("def f(xs=[1, 2], name='hi'):\n    pass\n",
			extractor.Options{Verbosity: models.VerbosityArgs})
		Expect(structure.Functions[0].Signature).To(Equal("f(xs=[1, 2], name='hi')"))
	})

	It("carries splat arguments through by name", func() {
		structure := extract("def f(a, *args, **kwargs):\n    pass\n",
			extractor.Options{Verbosity: models.VerbosityArgs})
		Expect(structure.Functions[0].Signature).To(Equal("f(a, *args, **kwargs)"))
	})

	Describe("docstrings", func() {
		It("ignores them by default", func() {
			structure := extract(sampleSource, extractor.Options{})
			Expect(structure.Docstring).To(BeEmpty())
			Expect(structure.Functions[0].Docstring).To(BeEmpty())
			Expect(structure.Classes["Greeter"].Docstring).To(BeEmpty())
		})

		It("collects them per module, function, and class when requested", func() {
			structure := extract(sampleSource, extractor.Options{Docstrings: true})
			Expect(structure.Docstring).To(Equal("Module doc."))
			Expect(structure.Functions[0].Docstring).To(Equal("Add things."))
			Expect(structure.Classes["Greeter"].Docstring).To(Equal("Says hello."))
			Expect(structure.Functions[1].Docstring).To(BeEmpty(), "tail has no docstring")
		})

		It("only treats a leading string literal as a docstring", func() {
			structure := extract("def f():\n    x = 1\n    \"not a docstring\"\n",
				extractor.Options{Docstrings: true})
			Expect(structure.Functions[0].Docstring).To(BeEmpty())
		})
	})

	Describe("nested definitions", func() {
		It("treats methods after a nested class as top-level", func() {
			// The class cursor is cleared, not restored, when a nested
			// class body ends.
			src := `class Outer:
    class Inner:
        def inner_method(self):
            pass

    def late_method(self):
        pass
`
			structure := extract(src, extractor.Options{})
			Expect(structure.Classes).To(HaveKey("Outer"))
			Expect(structure.Classes).To(HaveKey("Inner"))
			Expect(structure.Classes["Inner"].Methods).To(HaveKey("inner_method"))
			Expect(structure.Classes["Outer"].Methods).To(BeEmpty())

			Expect(structure.Functions).To(HaveLen(1))
			Expect(structure.Functions[0].Name).To(Equal("late_method"))
		})

		It("records functions nested inside functions", func() {
			src := "def outer():\n    def inner():\n        pass\n    return inner\n"
			structure := extract(src, extractor.Options{})
			Expect(structure.Functions).To(HaveLen(2))
			Expect(structure.Functions[0].Name).To(Equal("outer"))
			Expect(structure.Functions[1].Name).To(Equal("inner"))
		})

		It("sees through decorators", func() {
			src := "@decorated\ndef f():\n    pass\n"
			structure := extract(src, extractor.Options{})
			Expect(structure.Functions).To(HaveLen(1))
			Expect(structure.Functions[0].Name).To(Equal("f"))
		})
	})

	Describe("parse failures", func() {
		It("returns an error naming the file for broken source", func() {
			_, err := extractor.Extract(context.Background(), []byte("def broken(:\n"), "bad.py", extractor.Options{})
			Expect(err).To(MatchError(ContainSubstring("bad.py")))
			Expect(err).To(MatchError(ContainSubstring("syntax error")))
		})

		It("yields no partial structure on failure", func() {
			structure, err := extractor.Extract(context.Background(), []byte("class X(:\n"), "bad.py", extractor.Options{})
			Expect(err).To(HaveOccurred())
			Expect(structure).To(BeNil())
		})
	})

	It("detects Python files by extension", func() {
		Expect(extractor.IsPythonFile("pkg/mod.py")).To(BeTrue())
		Expect(extractor.IsPythonFile("pkg/mod.pyi")).To(BeTrue())
		Expect(extractor.IsPythonFile("pkg/mod.pyc")).To(BeFalse())
		Expect(extractor.IsPythonFile("main.go")).To(BeFalse())
	})
})
