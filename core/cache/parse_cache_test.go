package cache_test

import (
	"os"
	"path/filepath"
	"time"

	"github.com/wakabaloola/visualise-code-structure/core/cache"
	"github.com/wakabaloola/visualise-code-structure/core/models"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ParseCache", func() {
	var (
		pc      *cache.ParseCache
		tmpDir  string
		pyFile  string
		outline *models.FileStructure
	)

	writeFile := func(content string) {
		GinkgoHelper()
		Expect(os.WriteFile(pyFile, []byte(content), 0o644)).To(Succeed())
	}

	BeforeEach(func() {
		pc = cache.NewParseCache(cache.DefaultCacheConfig())
		tmpDir = GinkgoT().TempDir()
		pyFile = filepath.Join(tmpDir, "mod.py")
		writeFile("def f():\n    pass\n")
		outline = models.NewFileStructure("mod.py")
	})

	It("misses on unknown paths", func() {
		_, ok := pc.ValidateAndGet(pyFile)
		Expect(ok).To(BeFalse())
	})

	It("returns the cached outline while the file is unchanged", func() {
		Expect(pc.Set(pyFile, outline)).To(Succeed())

		got, ok := pc.ValidateAndGet(pyFile)
		Expect(ok).To(BeTrue())
		Expect(got).To(BeIdenticalTo(outline))
	})

	It("misses after the file content changes", func() {
		Expect(pc.Set(pyFile, outline)).To(Succeed())

		writeFile("def g():\n    pass\n")
		// force a visible mtime change regardless of filesystem resolution
		later := time.Now().Add(2 * time.Second)
		Expect(os.Chtimes(pyFile, later, later)).To(Succeed())

		_, ok := pc.ValidateAndGet(pyFile)
		Expect(ok).To(BeFalse())
	})

	It("survives an mtime-only touch via the content hash", func() {
		Expect(pc.Set(pyFile, outline)).To(Succeed())

		later := time.Now().Add(2 * time.Second)
		Expect(os.Chtimes(pyFile, later, later)).To(Succeed())

		_, ok := pc.ValidateAndGet(pyFile)
		Expect(ok).To(BeTrue())
	})

	It("misses after explicit invalidation", func() {
		Expect(pc.Set(pyFile, outline)).To(Succeed())
		pc.InvalidateFile(pyFile)

		_, ok := pc.ValidateAndGet(pyFile)
		Expect(ok).To(BeFalse())
	})

	It("misses after the file is deleted", func() {
		Expect(pc.Set(pyFile, outline)).To(Succeed())
		Expect(os.Remove(pyFile)).To(Succeed())

		_, ok := pc.ValidateAndGet(pyFile)
		Expect(ok).To(BeFalse())
	})

	It("tracks hit and miss metrics", func() {
		Expect(pc.Set(pyFile, outline)).To(Succeed())
		pc.ValidateAndGet(pyFile)
		pc.ValidateAndGet(filepath.Join(tmpDir, "other.py"))

		metrics := pc.GetMetrics()
		Expect(metrics.Hits).To(BeEquivalentTo(1))
		Expect(metrics.Misses).To(BeEquivalentTo(1))
		Expect(metrics.TotalEntries).To(Equal(1))
	})
})
