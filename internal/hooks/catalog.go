package hooks

import "github.com/hackia/breath/internal/stack"

// Hook is one external tool invocation belonging to a language profile.
type Hook struct {
	Name        string   // log filename stem, unique within a language
	Description string   // shown next to the spinner while the tool runs
	Success     string   // printed when the tool exits zero
	Failure     string   // printed when the tool exits non-zero
	Args        []string // arguments passed to the profile's program
}

// catalog is the closed hook table. Hooks are ordered cheapest-feedback
// first (format before lint before test before audit): every hook runs
// regardless, but the findings the user can act on fastest surface first.
var catalog = map[stack.Language][]Hook{
	stack.Rust: {
		{
			Name:        "audit",
			Description: "Checking for security vulnerabilities in your Rust dependencies",
			Success:     "No vulnerabilities found",
			Failure:     "Vulnerabilities found",
			Args:        []string{"audit"},
		},
		{
			Name:        "fmt",
			Description: "Checking for formatting issues in your Rust code",
			Success:     "Code formatting is correct",
			Failure:     "Code formatting issues found",
			Args:        []string{"fmt", "--check"},
		},
		{
			Name:        "clippy",
			Description: "Checking for linting issues and code improvements",
			Success:     "No issues found",
			Failure:     "Clippy checks found issues",
			Args: []string{
				"clippy", "--",
				"-D", "clippy::all",
				"-W", "warnings",
				"-D", "clippy::pedantic",
				"-D", "clippy::nursery",
				"-A", "clippy::multiple_crate_versions",
				"-W", "clippy::cargo",
			},
		},
		{
			Name:        "test",
			Description: "Running tests for your Rust project",
			Success:     "Tests passed",
			Failure:     "Tests failed",
			Args:        []string{"test", "--no-fail-fast"},
		},
		{
			Name:        "outdated",
			Description: "Checking for outdated packages in your Rust project",
			Success:     "No outdated packages found",
			Failure:     "Outdated packages found",
			Args:        []string{"outdated"},
		},
	},
	stack.NodeJS: {
		{
			Name:        "outdated",
			Description: "Checking for outdated packages in your Node.js project",
			Success:     "No outdated packages found",
			Failure:     "Outdated packages found",
			Args:        []string{"outdated"},
		},
		{
			Name:        "test",
			Description: "Running tests for your Node.js project",
			Success:     "Tests passed",
			Failure:     "Tests failed",
			Args:        []string{"run", "test"},
		},
	},
	stack.Php: {
		{
			Name:        "outdated",
			Description: "Checking for outdated packages in your PHP project",
			Success:     "No outdated packages found",
			Failure:     "Outdated packages found",
			Args:        []string{"outdated"},
		},
		{
			Name:        "security",
			Description: "Checking for security vulnerabilities in your PHP dependencies",
			Success:     "No security vulnerabilities found",
			Failure:     "Security vulnerabilities found",
			Args:        []string{"security-check"},
		},
		{
			Name:        "php-cs-fixer",
			Description: "Checking for formatting issues in your PHP code",
			Success:     "No formatting issues found",
			Failure:     "Formatting issues found",
			Args:        []string{"php-cs-fixer", "fix", "--dry-run", "--diff"},
		},
		{
			Name:        "test",
			Description: "Running tests for your PHP project",
			Success:     "Tests passed",
			Failure:     "Tests failed",
			Args:        []string{"run", "test"},
		},
	},
	stack.Go: {
		{
			Name:        "gofmt",
			Description: "Checking for code formatting in your Go project",
			Success:     "Code formatting is correct",
			Failure:     "Code formatting issues found",
			Args:        []string{"fmt", "-x"},
		},
		{
			Name:        "test",
			Description: "Running tests for your Go project",
			Success:     "Tests passed",
			Failure:     "Tests failed",
			Args:        []string{"test", "./..."},
		},
		{
			Name:        "lint",
			Description: "Performing static code analysis",
			Success:     "No issues found",
			Failure:     "Static analysis issues found",
			Args:        []string{"vet", "./..."},
		},
		{
			Name:        "deps",
			Description: "Checking dependency management",
			Success:     "Dependencies are properly managed",
			Failure:     "Dependency issues found",
			Args:        []string{"mod", "tidy"},
		},
		{
			Name:        "build",
			Description: "Building the Go project",
			Success:     "Build successful",
			Failure:     "Build failed",
			Args:        []string{"build"},
		},
	},
	stack.CSharp: {
		{
			Name:        "format",
			Description: "Checking for code formatting in your C# project",
			Success:     "Code formatting is correct",
			Failure:     "Code formatting issues found",
			Args:        []string{"format", "--verify-no-changes"},
		},
		{
			Name:        "build",
			Description: "Building the C# project",
			Success:     "Build successful",
			Failure:     "Build failed",
			Args:        []string{"build"},
		},
		{
			Name:        "test",
			Description: "Running unit tests for your C# project",
			Success:     "Tests passed",
			Failure:     "Tests failed",
			Args:        []string{"test"},
		},
		{
			Name:        "analyze",
			Description: "Performing static code analysis",
			Success:     "No issues found",
			Failure:     "Code analysis issues found",
			Args:        []string{"analyze"},
		},
		{
			Name:        "deps",
			Description: "Checking NuGet package dependencies",
			Success:     "Dependencies are up to date",
			Failure:     "Dependency issues found",
			Args:        []string{"restore"},
		},
	},
	stack.Java: {
		{
			Name:        "format",
			Description: "Checking code formatting with Google Java Format",
			Success:     "Code formatting is correct",
			Failure:     "Code formatting issues found",
			Args:        []string{"google-java-format", "--dry-run"},
		},
		{
			Name:        "build",
			Description: "Building the Java project with Maven",
			Success:     "Build successful",
			Failure:     "Build failed",
			Args:        []string{"clean", "compile"},
		},
		{
			Name:        "test",
			Description: "Running unit tests with JUnit",
			Success:     "Tests passed",
			Failure:     "Tests failed",
			Args:        []string{"test"},
		},
		{
			Name:        "analyze",
			Description: "Analyzing code with SpotBugs",
			Success:     "No issues found",
			Failure:     "Code analysis issues found",
			Args:        []string{"spotbugs:check"},
		},
		{
			Name:        "deps",
			Description: "Checking for dependency updates",
			Success:     "Dependencies are up to date",
			Failure:     "Dependency updates available",
			Args:        []string{"versions:display-dependency-updates"},
		},
	},
	stack.CMake: {
		{
			Name:        "cmake-validate",
			Description: "Validating CMake configuration files",
			Success:     "CMake configuration is valid",
			Failure:     "CMake configuration validation failed",
			Args:        []string{"."},
		},
	},
}

// For returns the ordered hook list for a language. Unknown languages get
// an empty list.
func For(lang stack.Language) []Hook {
	hooks := catalog[lang]
	out := make([]Hook, len(hooks))
	copy(out, hooks)
	return out
}
