// Package stack detects which language ecosystems are present in a
// working tree by probing for well-known marker files at its root.
package stack

import (
	"os"
	"path/filepath"
)

// Language identifies one supported ecosystem.
type Language string

const (
	Rust   Language = "Rust"
	NodeJS Language = "NodeJS"
	Php    Language = "Php"
	Go     Language = "Go"
	CSharp Language = "CSharp"
	Java   Language = "Java"
	CMake  Language = "CMake"
)

// Profile associates a language with the marker files that select it and
// the program its hooks run through.
type Profile struct {
	Language Language
	Program  string   // executable that drives this ecosystem's hooks
	Markers  []string // filenames probed at the root, any match selects
}

// profiles is the closed detection table. Order is significant: Detect
// returns matches in this order, so repeated runs over an unchanged tree
// always produce the same sequence.
var profiles = []Profile{
	{Language: Rust, Program: "cargo", Markers: []string{"Cargo.toml"}},
	{Language: NodeJS, Program: "npm", Markers: []string{"package.json"}},
	{Language: Php, Program: "composer", Markers: []string{"composer.json"}},
	{Language: Go, Program: "go", Markers: []string{"go.mod"}},
	{Language: CSharp, Program: "dotnet", Markers: []string{".csproj"}},
	{Language: Java, Program: "mvn", Markers: []string{"build.gradle", "pom.xml"}},
	{Language: CMake, Program: "cmake", Markers: []string{"CMakeLists.txt"}},
}

// Profiles returns the full detection table, in detection order.
func Profiles() []Profile {
	out := make([]Profile, len(profiles))
	copy(out, profiles)
	return out
}

// Detect returns the profiles whose marker files exist directly under
// root, in table order. Only presence is checked, file contents are never
// read, and the scan is non-recursive. An empty result is not an error:
// it means no known ecosystem lives here.
func Detect(root string) []Profile {
	var found []Profile
	for _, p := range profiles {
		for _, marker := range p.Markers {
			if _, err := os.Lstat(filepath.Join(root, marker)); err == nil {
				found = append(found, p)
				break
			}
		}
	}
	return found
}
