// Command maskgen converts a rotation-table text file into Go source,
// for consumers that want the catalog compiled in instead of parsed at
// startup.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/plus3/blockfall/tetris"
	"golang.org/x/tools/imports"
)

func main() {
	in := flag.String("in", "", "Rotation table to convert; empty for the built-in catalog.")
	out := flag.String("out", "", "Output file; empty for stdout.")
	pkg := flag.String("pkg", "main", "Package name for the generated file.")
	varName := flag.String("var", "Pieces", "Variable name for the generated catalog.")
	flag.Parse()

	set := tetris.DefaultPieces()
	if *in != "" {
		var err error
		set, err = tetris.LoadPieceSet(*in)
		if err != nil {
			log.Fatal(err)
		}
	}

	src, err := generate(*pkg, *varName, set)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	if *out == "" {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatal(err)
	}
}

// generate renders the catalog as a Go source file and runs it through
// the goimports formatter, which doubles as a syntax check on the
// output.
func generate(pkg, varName string, set *tetris.PieceSet) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by maskgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "import \"github.com/plus3/blockfall/tetris\"\n\n")

	fmt.Fprintf(&b, "var %s = tetris.PieceSet{\n", varName)
	for kind := range tetris.KindCount {
		k := tetris.PieceKind(kind)
		fmt.Fprintf(&b, "\ttetris.Piece%s: {\n", k)
		for rot := range tetris.RotationCount {
			m := set.Mask(k, rot)
			b.WriteString("\t\t{\n")
			for y := range tetris.MaskSize {
				b.WriteString("\t\t\t{")
				for x := range tetris.MaskSize {
					if x > 0 {
						b.WriteString(", ")
					}
					fmt.Fprintf(&b, "%v", m.At(x, y))
				}
				b.WriteString("},\n")
			}
			b.WriteString("\t\t},\n")
		}
		b.WriteString("\t},\n")
	}
	b.WriteString("}\n")

	return imports.Process(varName+".go", b.Bytes(), nil)
}
