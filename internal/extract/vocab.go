// Package extract provides heuristic field extraction from résumé and job
// description text. Extraction is vocabulary-driven substring and regex
// matching, not NLP: a term is only found if the fixed vocabularies
// contain it.
package extract

// NotDetected is the sentinel for fields the heuristics could not find.
// Absence is data, never an error.
const NotDetected = "未检测到"

// DefaultTitle is used when no title-vocabulary entry appears in the text.
const DefaultTitle = "开发工程师"

// titleVocabulary lists known job titles in match-priority order; the first
// entry found as a substring wins.
var titleVocabulary = []string{
	"前端工程师",
	"后端工程师",
	"全栈工程师",
	"算法工程师",
	"数据分析师",
	"测试工程师",
	"运维工程师",
	"安卓工程师",
	"iOS工程师",
	"产品经理",
	"项目经理",
	"UI设计师",
	"交互设计师",
	"架构师",
	"技术总监",
	"运营专员",
}

// skillVocabulary lists every skill keyword the system can detect, scanned in
// order by substring containment (case-insensitive). Scan order here defines
// the order of extracted skill lists.
var skillVocabulary = []string{
	// Languages
	"JavaScript",
	"TypeScript",
	"Python",
	"Java",
	"Golang",
	"Go",
	"C++",
	"C#",
	"PHP",
	"Ruby",
	"Swift",
	"Kotlin",
	"Rust",
	"Scala",
	// Frontend
	"React",
	"Vue",
	"Angular",
	"HTML",
	"CSS",
	"Sass",
	"Webpack",
	"Vite",
	"小程序",
	// Backend and frameworks
	"Node.js",
	"Spring",
	"Django",
	"Flask",
	"Express",
	"gRPC",
	"GraphQL",
	// Data stores
	"MySQL",
	"PostgreSQL",
	"MongoDB",
	"Redis",
	"Elasticsearch",
	"Kafka",
	"RabbitMQ",
	"SQL",
	// Infra
	"Docker",
	"Kubernetes",
	"Linux",
	"Nginx",
	"Git",
	"CI/CD",
	"AWS",
	"阿里云",
	"腾讯云",
	// Data / ML
	"机器学习",
	"深度学习",
	"数据分析",
	"数据挖掘",
	"TensorFlow",
	"PyTorch",
	"Spark",
	"Hadoop",
	// Product / design tools
	"Figma",
	"Sketch",
	"Axure",
	"Photoshop",
	// Practice and soft skills
	"微服务",
	"分布式",
	"高并发",
	"性能优化",
	"敏捷开发",
	"单元测试",
	"自动化测试",
	"项目管理",
	"团队管理",
	"产品设计",
	"需求分析",
	"沟通能力",
	"英语",
}

// educationVocabulary lists degree keywords in scan order, highest first.
// The first entry found anywhere in the text wins, even when a later entry
// also appears.
var educationVocabulary = []string{
	"博士",
	"硕士",
	"本科",
	"大专",
	"高中",
}

// nameHeaderWords are generic header terms that disqualify a short line from
// being treated as the candidate's name.
var nameHeaderWords = []string{
	"简历",
	"求职",
	"个人",
	"应聘",
	"resume",
	"cv",
}
