package ignore_test

import (
	"github.com/wakabaloola/visualise-code-structure/core/ignore"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Matcher", func() {
	It("matches nothing with no patterns", func() {
		m := ignore.NewMatcher()
		Expect(m.Match("src/app.py")).To(BeFalse())
		Expect(m.Match(".")).To(BeFalse())
	})

	It("expands a trailing separator to everything beneath", func() {
		m := ignore.NewMatcher("tests/")
		Expect(m.Match("tests/unit/test_a.py")).To(BeTrue())
		Expect(m.Match("tests/test_b.py")).To(BeTrue())
		Expect(m.Match("tests")).To(BeTrue(), "the directory itself is excluded")
		Expect(m.Match("src/app.py")).To(BeFalse())
		Expect(m.Match("testset/app.py")).To(BeFalse(), "no partial directory-name match")
	})

	It("matches ancestor prefixes against plain patterns", func() {
		m := ignore.NewMatcher("vendor")
		Expect(m.Match("vendor")).To(BeTrue())
		Expect(m.Match("vendor/pkg/mod.py")).To(BeTrue())
		Expect(m.Match("src/vendor/mod.py")).To(BeTrue(), "slash-less patterns apply to any segment")
		Expect(m.Match("src/app.py")).To(BeFalse())
	})

	It("applies slash-less wildcard patterns at any depth", func() {
		m := ignore.NewMatcher("*.pyc")
		Expect(m.Match("x.pyc")).To(BeTrue())
		Expect(m.Match("a/b/x.pyc")).To(BeTrue())
		Expect(m.Match("a/b/x.py")).To(BeFalse())
	})

	It("anchors patterns containing separators", func() {
		m := ignore.NewMatcher("build/out/")
		Expect(m.Match("build/out/x.py")).To(BeTrue())
		Expect(m.Match("other/build/out/x.py")).To(BeFalse())
	})

	DescribeTable("default patterns",
		func(path string, expected bool) {
			m := ignore.NewMatcher(ignore.DefaultPatterns()...)
			Expect(m.Match(path)).To(Equal(expected))
		},
		Entry("bytecode cache dir", "pkg/__pycache__/mod.cpython-311.pyc", true),
		Entry("bytecode cache dir itself", "pkg/__pycache__", true),
		Entry("git dir", ".git/config", true),
		Entry("virtualenv", "venv/lib/python3.11/site-packages/x.py", true),
		Entry("hidden virtualenv", "sub/.venv/bin/activate", true),
		Entry("compiled bytecode", "pkg/mod.pyc", true),
		Entry("OS metadata", "docs/.DS_Store", true),
		Entry("regular source file", "src/module.py", false),
		Entry("regular package dir", "src/mypackage", false),
	)
})
