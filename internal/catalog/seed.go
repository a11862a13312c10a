package catalog

import "fmt"

func init() {
	built, err := buildCatalog(seedFields(), seedSimulations())
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid seed data: %v", err))
	}
	c = built
}

func seedFields() []Field {
	return []Field{
		{ID: "software-engineering", Name: "Software Engineering", Description: "Build, debug, and test production software"},
		{ID: "cybersecurity", Name: "Cybersecurity", Description: "Assess and harden systems against attackers"},
		{ID: "data-science", Name: "Data Science", Description: "Analyze data and build predictive models"},
		{ID: "devops", Name: "DevOps", Description: "Ship, run, and observe services in production"},
		{ID: "cloud-computing", Name: "Cloud Computing", Description: "Design and secure cloud infrastructure"},
		{ID: "mobile-development", Name: "Mobile Development", Description: "Build and optimize mobile applications"},
		{ID: "product-management", Name: "Product Management", Description: "Define product strategy, roadmap, and drive product development"},
	}
}

func seedSimulations() []Simulation {
	return []Simulation{
		{
			ID:            "se-debugging-1",
			Title:         "Debug Shopping Cart Code",
			Description:   "Find and fix critical bugs in a Python e-commerce shopping cart",
			FieldID:       "software-engineering",
			SubField:      "Debugging",
			Difficulty:    DifficultyMedium,
			EstimatedMins: 20,
			Briefing:      "You're a software engineer on an e-commerce team. The shopping cart feature has been causing issues in production. Review the code and identify the bugs causing problems.",
			Instructions: []string{
				"Download the Python code file",
				"Carefully review each function for logical errors",
				"Count the total number of bugs present",
				"Submit the number of bugs found",
			},
			Questions: []Question{
				{ID: "q1", Prompt: "How many logic bugs are present?", AnswerType: AnswerNumber, CorrectAnswer: "5",
					Hints: []string{"Scan for assignment vs comparison (==)", "Check edge cases in checkout flow"}},
				{ID: "q2", Prompt: "Name one validation missing in discount handling.", AnswerType: AnswerText, CorrectAnswer: "negative discount",
					Hints: []string{"Validate input range before applying", "Percent should not be below 0 or above 100"}},
			},
			Badge:    "Debugging Specialist",
			Artifact: shoppingCartArtifact,
		},
		{
			ID:            "se-development-1",
			Title:         "Build REST API Endpoint",
			Description:   "Design and implement a secure login endpoint",
			FieldID:       "software-engineering",
			SubField:      "Development",
			Difficulty:    DifficultyMedium,
			EstimatedMins: 25,
			Briefing:      "You're building the authentication endpoint for a new service. Security review is next week, so get the fundamentals right.",
			Instructions: []string{
				"Review the API requirements",
				"Design the login flow",
				"Answer the design questions",
			},
			Questions: []Question{
				{ID: "q1", Prompt: "What HTTP status code indicates successful login?", AnswerType: AnswerNumber, CorrectAnswer: "200",
					Hints: []string{"2xx means success", "Common OK status"}},
				{ID: "q2", Prompt: "Should passwords be stored in plaintext? (yes/no)", AnswerType: AnswerText, CorrectAnswer: "no",
					Hints: []string{"Use hashing with salt", "Think about security best practices"}},
				{ID: "q3", Prompt: "What security measure prevents brute force attacks?", AnswerType: AnswerText, CorrectAnswer: "rate limiting",
					Hints: []string{"Limit how often a client may try", "Throttle repeated requests"}},
			},
			Badge: "API Development Expert",
		},
		{
			ID:            "se-testing-1",
			Title:         "Write Unit Tests",
			Description:   "Plan test coverage for a calculator module",
			FieldID:       "software-engineering",
			SubField:      "Testing",
			Difficulty:    DifficultyEasy,
			EstimatedMins: 15,
			Briefing:      "A calculator module shipped without tests. Before refactoring it, you need a safety net.",
			Instructions: []string{
				"Review the calculator functions",
				"Plan the test cases",
				"Answer the coverage questions",
			},
			Questions: []Question{
				{ID: "q1", Prompt: "How many unit tests will you write?", AnswerType: AnswerNumber, CorrectAnswer: "7",
					Hints: []string{"Cover happy paths and errors", "Think about boundaries"}},
				{ID: "q2", Prompt: "Name one edge case to test.", AnswerType: AnswerText, CorrectAnswer: "division by zero",
					Hints: []string{"Invalid inputs", "Exceptional conditions"}},
			},
			Badge: "Quality Assurance Professional",
		},
		{
			ID:            "cyber-password-1",
			Title:         "Password Security Assessment",
			Description:   "Crack weak password hashes and identify the algorithm",
			FieldID:       "cybersecurity",
			SubField:      "Password Security",
			Difficulty:    DifficultyMedium,
			EstimatedMins: 20,
			Briefing:      "You're a security analyst auditing a leaked credential dump. Identify how weak the passwords really are.",
			Instructions: []string{
				"Download the hash dump",
				"Crack as many hashes as you can with the wordlist",
				"Identify the hash algorithm",
			},
			Questions: []Question{
				{ID: "q1", Prompt: "Provide at least two cracked passwords (comma-separated)", AnswerType: AnswerList, CorrectAnswer: "password123,admin,letmein",
					Hints: []string{"Start with common weak passwords", "Use the provided wordlist"}},
				{ID: "q2", Prompt: "What hash algorithm is used?", AnswerType: AnswerText, CorrectAnswer: "md5",
					Hints: []string{"Look at the file header/title", "It's a widely known legacy hash"}},
			},
			Badge:    "Security Analyst",
			Artifact: passwordHashesArtifact,
		},
		{
			ID:            "cyber-penetration-1",
			Title:         "Network Vulnerability Scan",
			Description:   "Audit a router configuration for exploitable weaknesses",
			FieldID:       "cybersecurity",
			SubField:      "Penetration Testing",
			Difficulty:    DifficultyHard,
			EstimatedMins: 25,
			Briefing:      "You're running an authorized penetration test against a corporate network. The router config is your starting point.",
			Instructions: []string{
				"Download the network configuration",
				"Identify exposed services and weak settings",
				"Rank the findings by severity",
			},
			Questions: []Question{
				{ID: "q1", Prompt: "What is the most critical vulnerability?", AnswerType: AnswerText, CorrectAnswer: "default_credentials",
					Hints: []string{"Think about easy entry points", "Factory settings often remain unchanged"}},
				{ID: "q2", Prompt: "Is telnet enabled? (yes/no)", AnswerType: AnswerText, CorrectAnswer: "yes",
					Hints: []string{"Check legacy services", "Insecure remote access"}},
				{ID: "q3", Prompt: "How many minutes would it take a real hacker to exploit this network?", AnswerType: AnswerNumber, CorrectAnswer: "5",
					Hints: []string{"Single-digit estimate", "Quick win for attackers"}},
			},
			Badge:    "Penetration Tester",
			Artifact: networkConfigArtifact,
		},
		{
			ID:            "ds-analysis-1",
			Title:         "Customer Churn Prediction",
			Description:   "Analyze telecom churn data to find the drivers",
			FieldID:       "data-science",
			SubField:      "Analysis",
			Difficulty:    DifficultyMedium,
			EstimatedMins: 25,
			Briefing:      "You're a data analyst at a telecom company. Leadership wants to know why customers leave and what keeps them.",
			Instructions: []string{
				"Download the churn dataset",
				"Explore correlations with the churn column",
				"Answer the analysis questions",
			},
			Questions: []Question{
				{ID: "q1", Prompt: "Which feature has the strongest correlation with churn?", AnswerType: AnswerText, CorrectAnswer: "Monthly_Charges",
					Hints: []string{"Look at continuous pricing data", "Higher bills often drive churn"}},
				{ID: "q2", Prompt: "Is churn higher for month-to-month contracts? (yes/no)", AnswerType: AnswerText, CorrectAnswer: "yes",
					Hints: []string{"Commitment length matters", "Short-term plans"}},
				{ID: "q3", Prompt: "Name one feature that reduces churn risk.", AnswerType: AnswerText, CorrectAnswer: "online_security",
					Hints: []string{"Value-added services help retention", "Think protection features"}},
			},
			Badge:    "Data Analyst",
			Artifact: churnDatasetArtifact,
		},
		{
			ID:            "ds-modeling-1",
			Title:         "Build ML Pipeline",
			Description:   "Design a spam-detection model and feature pipeline",
			FieldID:       "data-science",
			SubField:      "Modeling",
			Difficulty:    DifficultyHard,
			EstimatedMins: 30,
			Briefing:      "You're a machine learning engineer building a spam filter. Pick the model, the features, and report the accuracy.",
			Instructions: []string{
				"Review the email dataset",
				"Choose a model and feature extraction method",
				"Report the expected accuracy",
			},
			Questions: []Question{
				{ID: "q1", Prompt: "What accuracy did your model achieve? (e.g., 85%)", AnswerType: AnswerPercentage, CorrectAnswer: "85%",
					Hints: []string{"Two digits and a %", "Aim for mid-80s"}},
				{ID: "q2", Prompt: "Name one model suitable for spam detection.", AnswerType: AnswerText, CorrectAnswer: "naive bayes",
					Hints: []string{"Classic probabilistic model", "Also consider SVM"}},
				{ID: "q3", Prompt: "Name a common text feature extraction method.", AnswerType: AnswerText, CorrectAnswer: "tf-idf",
					Hints: []string{"Term weighting", "Beyond bag-of-words"}},
			},
			Badge: "Machine Learning Engineer",
		},
		{
			ID:            "devops-deployment-1",
			Title:         "Docker Containerization",
			Description:   "Containerize a service with a lean, repeatable image",
			FieldID:       "devops",
			SubField:      "Deployment",
			Difficulty:    DifficultyMedium,
			EstimatedMins: 20,
			Briefing:      "You're containerizing a web service for production. The image must build reproducibly and stay small.",
			Instructions: []string{
				"Plan the Dockerfile layers",
				"Decide on the base image",
				"Answer the build questions",
			},
			Questions: []Question{
				{ID: "q1", Prompt: "How many layers are in your Docker image?", AnswerType: AnswerNumber, CorrectAnswer: "4",
					Hints: []string{"Base, deps, code, runtime", "Think build layering"}},
				{ID: "q2", Prompt: "Should you pin dependency versions? (yes/no)", AnswerType: AnswerText, CorrectAnswer: "yes",
					Hints: []string{"Repeatable builds", "Avoid 'latest'"}},
				{ID: "q3", Prompt: "Name one way to reduce image size.", AnswerType: AnswerText, CorrectAnswer: "alpine",
					Hints: []string{"Choose smaller base images", "Multi-stage builds help"}},
			},
			Badge: "DevOps Engineer",
		},
		{
			ID:            "devops-monitoring-1",
			Title:         "Set Up Application Monitoring",
			Description:   "Define monitoring rules and dashboards for a production API",
			FieldID:       "devops",
			SubField:      "Monitoring",
			Difficulty:    DifficultyMedium,
			EstimatedMins: 25,
			Briefing:      "The checkout API keeps failing silently. You're the SRE adding the observability it should have had on day one.",
			Instructions: []string{
				"Download the monitoring requirements",
				"Define alert rules covering the golden signals",
				"Answer the tooling questions",
			},
			Questions: []Question{
				{ID: "q1", Prompt: "How many monitoring rules will you create?", AnswerType: AnswerNumber, CorrectAnswer: "6",
					Hints: []string{"Cover latency, errors, traffic", "Don't forget resource saturation"}},
				{ID: "q2", Prompt: "Name one metric for performance SLOs.", AnswerType: AnswerText, CorrectAnswer: "response time",
					Hints: []string{"User-facing latency", "Think UX"}},
				{ID: "q3", Prompt: "Which tool visualizes metrics?", AnswerType: AnswerText, CorrectAnswer: "grafana",
					Hints: []string{"Often paired with Prometheus", "Dashboards"}},
			},
			Badge:    "Site Reliability Engineer",
			Artifact: monitoringRequirementsArtifact,
		},
		{
			ID:            "cloud-aws-1",
			Title:         "AWS Infrastructure Design",
			Description:   "Design a production AWS architecture from requirements",
			FieldID:       "cloud-computing",
			SubField:      "Architecture",
			Difficulty:    DifficultyHard,
			EstimatedMins: 30,
			Briefing:      "You're the cloud architect for a platform migration. Map the requirements onto concrete AWS services.",
			Instructions: []string{
				"Download the infrastructure requirements",
				"Choose the services for each requirement",
				"Answer the design questions",
			},
			Questions: []Question{
				{ID: "q1", Prompt: "How many AWS services will you use?", AnswerType: AnswerNumber, CorrectAnswer: "12",
					Hints: []string{"Double digits."}},
				{ID: "q2", Prompt: "Name the DNS service in AWS.", AnswerType: AnswerText, CorrectAnswer: "route 53",
					Hints: []string{"Global DNS."}},
				{ID: "q3", Prompt: "Which service provides object storage?", AnswerType: AnswerText, CorrectAnswer: "s3",
					Hints: []string{"Buckets."}},
			},
			Badge:    "Cloud Architect",
			Artifact: awsRequirementsArtifact,
		},
		{
			ID:            "cloud-security-1",
			Title:         "Cloud Security Configuration",
			Description:   "Configure security groups and IAM policies for cloud resources",
			FieldID:       "cloud-computing",
			SubField:      "Security",
			Difficulty:    DifficultyMedium,
			EstimatedMins: 25,
			Briefing:      "You're a cloud security engineer responsible for securing AWS resources. The company has strict security requirements and needs proper access controls and network security.",
			Instructions: []string{
				"Download the security requirements",
				"Configure IAM policies and security groups",
				"Implement least privilege access",
			},
			Questions: []Question{
				{ID: "q1", Prompt: "How many security groups will you create?", AnswerType: AnswerNumber, CorrectAnswer: "5",
					Hints: []string{"Each tier."}},
				{ID: "q2", Prompt: "Should all users have MFA? (yes/no)", AnswerType: AnswerText, CorrectAnswer: "yes",
					Hints: []string{"Best practice."}},
				{ID: "q3", Prompt: "Name the AWS key management service.", AnswerType: AnswerText, CorrectAnswer: "kms",
					Hints: []string{"Keys."}},
			},
			Badge: "Cloud Security Engineer",
		},
		{
			ID:            "mobile-native-1",
			Title:         "iOS App Performance Optimization",
			Description:   "Optimize an iOS app for better performance and user experience",
			FieldID:       "mobile-development",
			SubField:      "Native Development",
			Difficulty:    DifficultyHard,
			EstimatedMins: 30,
			Briefing:      "You're an iOS developer working on a performance-critical app. Users are reporting slow load times and crashes. Identify and fix the bottlenecks.",
			Instructions: []string{
				"Review the app code",
				"Analyze performance issues",
				"Answer the optimization questions",
			},
			Questions: []Question{
				{ID: "q1", Prompt: "How many performance issues can you spot?", AnswerType: AnswerNumber, CorrectAnswer: "8",
					Hints: []string{"Scroll, memory, threads."}},
				{ID: "q2", Prompt: "Name one threading-related issue.", AnswerType: AnswerText, CorrectAnswer: "main thread blocking",
					Hints: []string{"UI stalls."}},
				{ID: "q3", Prompt: "How should large images be loaded?", AnswerType: AnswerText, CorrectAnswer: "asynchronously",
					Hints: []string{"Not sync."}},
			},
			Badge: "iOS Developer",
		},
		{
			ID:            "mobile-cross-1",
			Title:         "React Native State Management",
			Description:   "Implement proper state management in a React Native app",
			FieldID:       "mobile-development",
			SubField:      "Cross-Platform",
			Difficulty:    DifficultyMedium,
			EstimatedMins: 25,
			Briefing:      "The app's state management is becoming complex and causing bugs. You need to implement a proper state management solution.",
			Instructions: []string{
				"Analyze the current state management",
				"Plan the reducer structure",
				"Answer the design questions",
			},
			Questions: []Question{
				{ID: "q1", Prompt: "How many reducers would you create?", AnswerType: AnswerNumber, CorrectAnswer: "3",
					Hints: []string{"User, UI, errors."}},
				{ID: "q2", Prompt: "Name one state management library.", AnswerType: AnswerText, CorrectAnswer: "redux",
					Hints: []string{"Popular choice."}},
				{ID: "q3", Prompt: "Is direct state mutation OK? (yes/no)", AnswerType: AnswerText, CorrectAnswer: "no",
					Hints: []string{"Immutable updates."}},
			},
			Badge: "React Native Developer",
		},
		{
			ID:            "pm-strategy-1",
			Title:         "Product Roadmap Planning",
			Description:   "Create a product roadmap based on user research and business goals",
			FieldID:       "product-management",
			SubField:      "Strategy",
			Difficulty:    DifficultyHard,
			EstimatedMins: 35,
			Briefing:      "You're a Product Manager at a SaaS startup. The CEO wants a 6-month roadmap built from user feedback, market research, and business objectives.",
			Instructions: []string{
				"Download the user research data",
				"Prioritize features using RICE scoring",
				"Answer the planning questions",
			},
			Questions: []Question{
				{ID: "q1", Prompt: "How many features in Q1?", AnswerType: AnswerNumber, CorrectAnswer: "5",
					Hints: []string{"RICE picks."}},
				{ID: "q2", Prompt: "Name one high-impact feature.", AnswerType: AnswerText, CorrectAnswer: "user authentication",
					Hints: []string{"Security basics."}},
				{ID: "q3", Prompt: "Which prioritization method was suggested?", AnswerType: AnswerText, CorrectAnswer: "rice",
					Hints: []string{"Acronym."}},
			},
			Badge: "Product Strategist",
		},
		{
			ID:            "pm-analytics-1",
			Title:         "Product Metrics Analysis",
			Description:   "Read a product analytics dashboard and report the key numbers",
			FieldID:       "product-management",
			SubField:      "Analytics",
			Difficulty:    DifficultyMedium,
			EstimatedMins: 20,
			Briefing:      "You're the product analyst preparing the monthly metrics review. Pull the numbers leadership will ask about.",
			Instructions: []string{
				"Review the analytics export",
				"Compute the conversion rate",
				"Flag metrics trending the wrong way",
			},
			Questions: []Question{
				{ID: "q1", Prompt: "What is the conversion rate?", AnswerType: AnswerPercentage, CorrectAnswer: "12.5%",
					Hints: []string{"Leads/users."}},
				{ID: "q2", Prompt: "Name one metric trending down.", AnswerType: AnswerText, CorrectAnswer: "bounce rate",
					Hints: []string{"Look at arrows."}},
				{ID: "q3", Prompt: "Which metric indicates engagement duration?", AnswerType: AnswerText, CorrectAnswer: "average session duration",
					Hints: []string{"Time spent."}},
			},
			Badge: "Product Analyst",
		},
		{
			ID:            "pm-user-research-1",
			Title:         "User Research Synthesis",
			Description:   "Synthesize interview notes into actionable findings",
			FieldID:       "product-management",
			SubField:      "User Research",
			Difficulty:    DifficultyEasy,
			EstimatedMins: 15,
			Briefing:      "Twenty user interviews just wrapped. Turn the raw notes into the findings the team will act on.",
			Instructions: []string{
				"Download the research notes",
				"Tally the pain points",
				"Answer the synthesis questions",
			},
			Questions: []Question{
				{ID: "q1", Prompt: "Most frequent pain point?", AnswerType: AnswerText, CorrectAnswer: "slow_loading",
					Hints: []string{"Repeated many times."}},
				{ID: "q2", Prompt: "How many participants?", AnswerType: AnswerNumber, CorrectAnswer: "20",
					Hints: []string{"Two digits."}},
				{ID: "q3", Prompt: "Name one improvement requested.", AnswerType: AnswerText, CorrectAnswer: "dark mode",
					Hints: []string{"Theme option."}},
			},
			Badge:    "User Research Specialist",
			Artifact: userResearchArtifact,
		},
	}
}
