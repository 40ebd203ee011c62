package taxonomy

import "github.com/skillbridge/skillbridge/internal/schema"

// builtin is the shipped skill graph. Adjacency is directed and not
// guaranteed symmetric; targets need not be taxonomy keys themselves.
// Adding a skill is a data change only.
var builtin = map[string]Entry{
	// Languages
	"Python":     {schema.CategoryLanguage, []string{"Django", "Flask", "FastAPI", "pytest", "Celery", "NumPy", "Pandas"}},
	"JavaScript": {schema.CategoryLanguage, []string{"TypeScript", "React", "Vue", "Angular", "Node.js", "Express"}},
	"TypeScript": {schema.CategoryLanguage, []string{"JavaScript", "React", "Angular", "Node.js", "Next.js"}},
	"Java":       {schema.CategoryLanguage, []string{"Spring", "Spring Boot", "Kotlin", "Maven", "Gradle"}},
	"C#":         {schema.CategoryLanguage, []string{".NET", "ASP.NET", "Azure"}},
	"C++":        {schema.CategoryLanguage, []string{"Rust", "CMake"}},
	"Go":         {schema.CategoryLanguage, []string{"Docker", "Kubernetes", "gRPC", "Protobuf"}},
	"Rust":       {schema.CategoryLanguage, []string{"C++", "WebAssembly"}},
	"Ruby":       {schema.CategoryLanguage, []string{"Ruby on Rails", "RSpec"}},
	"PHP":        {schema.CategoryLanguage, []string{"Laravel", "WordPress"}},
	"Swift":      {schema.CategoryLanguage, []string{"iOS", "Xcode"}},
	"Kotlin":     {schema.CategoryLanguage, []string{"Java", "Android", "Spring Boot"}},
	"Scala":      {schema.CategoryLanguage, []string{"Java", "Apache Spark", "Kafka"}},
	"R":          {schema.CategoryLanguage, []string{"Python", "NumPy", "Pandas"}},
	"SQL":        {schema.CategoryLanguage, []string{"PostgreSQL", "MySQL", "SQLite"}},
	"HTML":       {schema.CategoryLanguage, []string{"CSS", "JavaScript", "React"}},
	"CSS":        {schema.CategoryLanguage, []string{"HTML", "Sass", "Tailwind CSS"}},

	// Frontend frameworks
	"React":   {schema.CategoryFramework, []string{"Next.js", "Redux", "TypeScript", "React Native", "Vite"}},
	"Vue":     {schema.CategoryFramework, []string{"Nuxt", "Vuex", "TypeScript", "Vite"}},
	"Angular": {schema.CategoryFramework, []string{"TypeScript", "RxJS", "NgRx"}},
	"Next.js": {schema.CategoryFramework, []string{"React", "TypeScript", "Vercel"}},
	"Nuxt":    {schema.CategoryFramework, []string{"Vue", "TypeScript"}},
	"Svelte":  {schema.CategoryFramework, []string{"TypeScript", "Vite"}},

	// Backend frameworks
	"Django":        {schema.CategoryFramework, []string{"Python", "PostgreSQL", "Celery", "Django REST Framework"}},
	"Flask":         {schema.CategoryFramework, []string{"Python", "SQLAlchemy", "Celery"}},
	"FastAPI":       {schema.CategoryFramework, []string{"Python", "Pydantic", "SQLAlchemy"}},
	"Express":       {schema.CategoryFramework, []string{"Node.js", "JavaScript", "TypeScript", "MongoDB"}},
	"Spring":        {schema.CategoryFramework, []string{"Java", "Spring Boot", "Maven"}},
	"Spring Boot":   {schema.CategoryFramework, []string{"Java", "Spring", "Kotlin", "Maven", "Gradle"}},
	"Ruby on Rails": {schema.CategoryFramework, []string{"Ruby", "PostgreSQL", "Redis"}},
	".NET":          {schema.CategoryFramework, []string{"C#", "ASP.NET", "Azure"}},
	"ASP.NET":       {schema.CategoryFramework, []string{"C#", ".NET", "Azure"}},
	"Laravel":       {schema.CategoryFramework, []string{"PHP", "MySQL"}},
	"Node.js":       {schema.CategoryFramework, []string{"JavaScript", "TypeScript", "Express", "Fastify"}},
	"Fastify":       {schema.CategoryFramework, []string{"Node.js", "TypeScript"}},

	// Data stores and messaging
	"PostgreSQL":    {schema.CategoryInfrastructure, []string{"SQL", "Redis", "Django"}},
	"MySQL":         {schema.CategoryInfrastructure, []string{"SQL", "PHP", "Laravel"}},
	"MongoDB":       {schema.CategoryInfrastructure, []string{"Node.js", "Express", "Mongoose"}},
	"Redis":         {schema.CategoryInfrastructure, []string{"PostgreSQL", "Celery", "Caching"}},
	"SQLite":        {schema.CategoryInfrastructure, []string{"SQL", "Python"}},
	"Elasticsearch": {schema.CategoryInfrastructure, []string{"Kibana", "Logstash"}},
	"Kafka":         {schema.CategoryInfrastructure, []string{"Event-Driven Architecture", "Microservices", "Java"}},
	"RabbitMQ":      {schema.CategoryInfrastructure, []string{"Microservices", "Celery", "Event-Driven Architecture"}},

	// Infrastructure
	"Docker":         {schema.CategoryInfrastructure, []string{"Kubernetes", "Docker Compose", "CI/CD"}},
	"Docker Compose": {schema.CategoryInfrastructure, []string{"Docker", "Kubernetes"}},
	"Kubernetes":     {schema.CategoryInfrastructure, []string{"Docker", "Helm", "Terraform", "AWS"}},
	"Terraform":      {schema.CategoryInfrastructure, []string{"AWS", "GCP", "Azure", "Kubernetes"}},
	"AWS":            {schema.CategoryInfrastructure, []string{"Terraform", "Docker", "Kubernetes", "Lambda"}},
	"GCP":            {schema.CategoryInfrastructure, []string{"Terraform", "Docker", "Kubernetes"}},
	"Azure":          {schema.CategoryInfrastructure, []string{"Terraform", ".NET", "C#"}},
	"GitHub Actions": {schema.CategoryInfrastructure, []string{"Docker", "CI/CD", "Git"}},
	"GitLab CI":      {schema.CategoryInfrastructure, []string{"Docker", "CI/CD", "Git"}},
	"Jenkins":        {schema.CategoryInfrastructure, []string{"Docker", "CI/CD", "Groovy"}},
	"Ansible":        {schema.CategoryInfrastructure, []string{"Terraform", "Linux", "Docker"}},
	"Nginx":          {schema.CategoryInfrastructure, []string{"Linux", "Docker", "Load Balancing"}},
	"Linux":          {schema.CategoryInfrastructure, []string{"Docker", "Bash", "Nginx"}},
	"Helm":           {schema.CategoryInfrastructure, []string{"Kubernetes", "Docker"}},

	// Tools
	"Git":          {schema.CategoryTool, []string{"GitHub Actions", "GitLab CI"}},
	"Webpack":      {schema.CategoryTool, []string{"JavaScript", "React", "Vite"}},
	"Vite":         {schema.CategoryTool, []string{"React", "Vue", "Svelte"}},
	"Jest":         {schema.CategoryTool, []string{"JavaScript", "React", "TypeScript"}},
	"pytest":       {schema.CategoryTool, []string{"Python", "Django", "Flask"}},
	"Selenium":     {schema.CategoryTool, []string{"Testing", "Python", "JavaScript"}},
	"Redux":        {schema.CategoryTool, []string{"React", "TypeScript"}},
	"GraphQL":      {schema.CategoryTool, []string{"React", "Apollo", "Node.js"}},
	"REST API":     {schema.CategoryTool, []string{"Express", "Django", "FastAPI"}},
	"Celery":       {schema.CategoryTool, []string{"Python", "Redis", "RabbitMQ"}},
	"Sass":         {schema.CategoryTool, []string{"CSS", "Tailwind CSS"}},
	"Tailwind CSS": {schema.CategoryTool, []string{"CSS", "React", "Vue"}},
	"NumPy":        {schema.CategoryTool, []string{"Python", "Pandas", "SciPy"}},
	"Pandas":       {schema.CategoryTool, []string{"Python", "NumPy", "SQL"}},
}
