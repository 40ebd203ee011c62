package github

import (
	"encoding/json"
	"strings"

	"github.com/skillbridge/skillbridge/internal/schema"
)

// signal is a detected technology before conversion to schema types.
type signal struct {
	Name     string
	Category schema.SkillCategory
}

// fileIndicators maps top-level files or directories to the technology
// their presence implies.
var fileIndicators = map[string]signal{
	"Dockerfile":          {"Docker", schema.CategoryInfrastructure},
	"docker-compose.yml":  {"Docker Compose", schema.CategoryInfrastructure},
	"docker-compose.yaml": {"Docker Compose", schema.CategoryInfrastructure},
	".github/workflows":   {"GitHub Actions", schema.CategoryInfrastructure},
	".gitlab-ci.yml":      {"GitLab CI", schema.CategoryInfrastructure},
	".circleci":           {"CircleCI", schema.CategoryInfrastructure},
	"Jenkinsfile":         {"Jenkins", schema.CategoryInfrastructure},
	"terraform":           {"Terraform", schema.CategoryInfrastructure},
	"kubernetes":          {"Kubernetes", schema.CategoryInfrastructure},
	"k8s":                 {"Kubernetes", schema.CategoryInfrastructure},
	"helm":                {"Helm", schema.CategoryInfrastructure},
	".travis.yml":         {"Travis CI", schema.CategoryInfrastructure},
	"netlify.toml":        {"Netlify", schema.CategoryInfrastructure},
	"vercel.json":         {"Vercel", schema.CategoryInfrastructure},
	"fly.toml":            {"Fly.io", schema.CategoryInfrastructure},
	"render.yaml":         {"Render", schema.CategoryInfrastructure},
	"nginx.conf":          {"Nginx", schema.CategoryInfrastructure},
	"Vagrantfile":         {"Vagrant", schema.CategoryInfrastructure},
	"ansible":             {"Ansible", schema.CategoryInfrastructure},
	".eslintrc.js":        {"ESLint", schema.CategoryTool},
	".eslintrc.json":      {"ESLint", schema.CategoryTool},
	"tailwind.config.js":  {"Tailwind CSS", schema.CategoryFramework},
	"tailwind.config.ts":  {"Tailwind CSS", schema.CategoryFramework},
	"tsconfig.json":       {"TypeScript", schema.CategoryLanguage},
	"webpack.config.js":   {"Webpack", schema.CategoryTool},
	"vite.config.ts":      {"Vite", schema.CategoryTool},
	"vite.config.js":      {"Vite", schema.CategoryTool},
	".prettierrc":         {"Prettier", schema.CategoryTool},
	"jest.config.js":      {"Jest", schema.CategoryTool},
	"jest.config.ts":      {"Jest", schema.CategoryTool},
	"pytest.ini":          {"pytest", schema.CategoryTool},
	"pyproject.toml":      {"Python Package", schema.CategoryTool},
	"Cargo.toml":          {"Rust", schema.CategoryLanguage},
	"go.mod":              {"Go", schema.CategoryLanguage},
	"Gemfile":             {"Ruby", schema.CategoryLanguage},
	"composer.json":       {"PHP", schema.CategoryLanguage},
	"build.gradle":        {"Gradle", schema.CategoryTool},
	"pom.xml":             {"Maven", schema.CategoryTool},
}

// npmDeps maps package.json dependency keys to technologies.
var npmDeps = map[string]signal{
	"react":          {"React", schema.CategoryFramework},
	"react-native":   {"React Native", schema.CategoryFramework},
	"next":           {"Next.js", schema.CategoryFramework},
	"vue":            {"Vue", schema.CategoryFramework},
	"nuxt":           {"Nuxt", schema.CategoryFramework},
	"svelte":         {"Svelte", schema.CategoryFramework},
	"@angular/core":  {"Angular", schema.CategoryFramework},
	"express":        {"Express", schema.CategoryFramework},
	"fastify":        {"Fastify", schema.CategoryFramework},
	"gatsby":         {"Gatsby", schema.CategoryFramework},
	"remix":          {"Remix", schema.CategoryFramework},
	"@nestjs/core":   {"NestJS", schema.CategoryFramework},
	"koa":            {"Koa", schema.CategoryFramework},
	"tailwindcss":    {"Tailwind CSS", schema.CategoryFramework},
	"prisma":         {"Prisma", schema.CategoryTool},
	"mongoose":       {"Mongoose", schema.CategoryTool},
	"sequelize":      {"Sequelize", schema.CategoryTool},
	"jest":           {"Jest", schema.CategoryTool},
	"mocha":          {"Mocha", schema.CategoryTool},
	"webpack":        {"Webpack", schema.CategoryTool},
	"vite":           {"Vite", schema.CategoryTool},
	"typescript":     {"TypeScript", schema.CategoryLanguage},
	"three":          {"Three.js", schema.CategoryFramework},
	"electron":       {"Electron", schema.CategoryFramework},
	"socket.io":      {"Socket.IO", schema.CategoryFramework},
	"graphql":        {"GraphQL", schema.CategoryTool},
	"@apollo/client": {"Apollo", schema.CategoryFramework},
	"redis":          {"Redis", schema.CategoryTool},
	"pg":             {"PostgreSQL", schema.CategoryTool},
	"mongodb":        {"MongoDB", schema.CategoryTool},
	"supabase":       {"Supabase", schema.CategoryTool},
	"firebase":       {"Firebase", schema.CategoryTool},
}

// pythonDeps maps requirements.txt substrings to technologies.
var pythonDeps = map[string]signal{
	"django":       {"Django", schema.CategoryFramework},
	"flask":        {"Flask", schema.CategoryFramework},
	"fastapi":      {"FastAPI", schema.CategoryFramework},
	"tornado":      {"Tornado", schema.CategoryFramework},
	"celery":       {"Celery", schema.CategoryTool},
	"sqlalchemy":   {"SQLAlchemy", schema.CategoryTool},
	"pandas":       {"pandas", schema.CategoryFramework},
	"numpy":        {"NumPy", schema.CategoryFramework},
	"scipy":        {"SciPy", schema.CategoryFramework},
	"scikit-learn": {"scikit-learn", schema.CategoryFramework},
	"tensorflow":   {"TensorFlow", schema.CategoryFramework},
	"torch":        {"PyTorch", schema.CategoryFramework},
	"pytest":       {"pytest", schema.CategoryTool},
	"pydantic":     {"Pydantic", schema.CategoryTool},
	"requests":     {"Requests", schema.CategoryTool},
	"boto3":        {"AWS SDK", schema.CategoryTool},
	"redis":        {"Redis", schema.CategoryTool},
	"psycopg2":     {"PostgreSQL", schema.CategoryTool},
}

// rustCrates maps Cargo.toml substrings to technologies.
var rustCrates = map[string]signal{
	"actix-web":    {"Actix Web", schema.CategoryFramework},
	"axum":         {"Axum", schema.CategoryFramework},
	"rocket":       {"Rocket", schema.CategoryFramework},
	"tokio":        {"Tokio", schema.CategoryTool},
	"serde":        {"Serde", schema.CategoryTool},
	"diesel":       {"Diesel", schema.CategoryTool},
	"sqlx":         {"SQLx", schema.CategoryTool},
	"leptos":       {"Leptos", schema.CategoryFramework},
	"yew":          {"Yew", schema.CategoryFramework},
	"tauri":        {"Tauri", schema.CategoryFramework},
	"wasm-bindgen": {"WebAssembly", schema.CategoryTool},
}

// rubyGems maps Gemfile substrings to technologies.
var rubyGems = map[string]signal{
	"rails":   {"Ruby on Rails", schema.CategoryFramework},
	"sinatra": {"Sinatra", schema.CategoryFramework},
	"sidekiq": {"Sidekiq", schema.CategoryTool},
	"rspec":   {"RSpec", schema.CategoryTool},
}

// goModules maps go.mod module path substrings to technologies.
var goModules = map[string]signal{
	"github.com/gin-gonic/gin":  {"Gin", schema.CategoryFramework},
	"github.com/gorilla/mux":    {"Gorilla Mux", schema.CategoryFramework},
	"github.com/labstack/echo":  {"Echo", schema.CategoryFramework},
	"github.com/gofiber/fiber":  {"Fiber", schema.CategoryFramework},
	"gorm.io/gorm":              {"GORM", schema.CategoryTool},
}

// phpPackages maps composer.json dependency keys to technologies.
var phpPackages = map[string]signal{
	"laravel/framework": {"Laravel", schema.CategoryFramework},
	"symfony/symfony":   {"Symfony", schema.CategoryFramework},
	"slim/slim":         {"Slim", schema.CategoryFramework},
}

// detectFileIndicators matches top-level names and paths against the
// file indicator registry, splitting infrastructure from the rest.
func detectFileIndicators(names, paths map[string]struct{}, frameworks, infra map[string]schema.SkillCategory) {
	for indicator, sig := range fileIndicators {
		_, inNames := names[indicator]
		_, inPaths := paths[indicator]
		if !inNames && !inPaths {
			continue
		}
		if sig.Category == schema.CategoryInfrastructure {
			infra[sig.Name] = sig.Category
		} else {
			frameworks[sig.Name] = sig.Category
		}
	}
}

// matchJSONDeps parses a JSON manifest and matches its dependency keys
// against a registry.
func matchJSONDeps(content string, depKeys []string, registry map[string]signal, out map[string]schema.SkillCategory) {
	var manifest map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &manifest); err != nil {
		return
	}

	deps := make(map[string]struct{})
	for _, key := range depKeys {
		raw, ok := manifest[key]
		if !ok {
			continue
		}
		var section map[string]json.RawMessage
		if err := json.Unmarshal(raw, &section); err != nil {
			continue
		}
		for name := range section {
			deps[name] = struct{}{}
		}
	}

	for dep, sig := range registry {
		if _, ok := deps[dep]; ok {
			out[sig.Name] = sig.Category
		}
	}
}

// matchSubstrings matches registry keys as substrings of a manifest.
func matchSubstrings(content string, lowercase bool, registry map[string]signal, out map[string]schema.SkillCategory) {
	if lowercase {
		content = strings.ToLower(content)
	}
	for key, sig := range registry {
		if strings.Contains(content, key) {
			out[sig.Name] = sig.Category
		}
	}
}

// detectStructures notes coarse project layout conventions.
func detectStructures(names map[string]struct{}, structures map[string]struct{}) {
	has := func(name string) bool {
		_, ok := names[name]
		return ok
	}

	if has("src") {
		structures["src_layout"] = struct{}{}
	}
	if has("packages") || has("libs") {
		structures["monorepo"] = struct{}{}
	}
	if has("setup.py") || has("pyproject.toml") {
		structures["python_package"] = struct{}{}
	}
	if has("package.json") {
		structures["node_project"] = struct{}{}
	}
	if has("Makefile") {
		structures["makefile"] = struct{}{}
	}
}
