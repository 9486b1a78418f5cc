package main

import (
	"fmt"
	"log"

	fspath "github.com/Jumpaku/go-fspath"
	"github.com/Jumpaku/go-fspath/fspathmust"
)

// configFile locates a file under a base directory and reports the combined
// path through the FSPath method.
type configFile struct {
	base string
	name string
}

func (f configFile) FSPath() string {
	return f.base + "/" + f.name
}

func main() {
	// Plain strings pass through unchanged.
	s, err := fspath.FSPath("etc/app/config.toml")
	if err != nil {
		log.Panic(err)
	}
	fmt.Println(s)

	// Values with an FSPath method are converted via that method.
	s, err = fspath.FSPath(configFile{base: "/etc/app", name: "config.toml"})
	if err != nil {
		log.Panic(err)
	}
	fmt.Println(s)

	// The Path type is path-like out of the box.
	fmt.Println(fspathmust.FSPath(fspath.Path("/var/log/app")))

	// Byte string representations use the []byte constraint.
	b, err := fspath.Bytes([]byte("/tmp/scratch"))
	if err != nil {
		log.Panic(err)
	}
	fmt.Printf("%s\n", b)

	// Values that are neither the required type nor path-like are rejected.
	if _, err := fspath.FSPath(42); err != nil {
		fmt.Println("error:", err)
	}
}
