package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB
)

var inlineSeeds = []string{
	"",
	"\"a\" = \"b\";\n",
	"\"a\" = \"b\" \"c\" = \"d\";\n",
	"\"a\" /* comment \n spanning lines */ = \"b\";",
	"// only a comment",
	"\"a\" = \"b\";\n\"c\" = \"d",
	"/x\n/",
	"\"k\"\t=\t\"v\" ;\r\n",
	"\"ключ\" = \"値\";\n",
	"/* unterminated *",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// every *.strings file under testdata becomes a seed
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".strings" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		return
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
