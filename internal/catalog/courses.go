package catalog

import "github.com/blockseblock/backend/internal/models"

const sampleVideoURL = "https://sample-videos.com/zip/10/mp4/SampleVideo_1280x720_1mb.mp4"

func video(id int, title, duration, difficulty string) models.Lesson {
	return models.Lesson{
		ID:          id,
		Title:       title,
		Duration:    duration,
		Difficulty:  difficulty,
		TokenReward: videoReward,
		Content:     models.VideoContent{VideoURL: sampleVideoURL},
	}
}

func quiz(id int, title, duration, difficulty string, q models.Quiz) models.Lesson {
	return models.Lesson{
		ID:          id,
		Title:       title,
		Duration:    duration,
		Difficulty:  difficulty,
		TokenReward: quizReward,
		Content:     models.QuizContent{Quiz: q},
	}
}

func exercise(id int, title, duration, difficulty, instructions string) models.Lesson {
	return models.Lesson{
		ID:          id,
		Title:       title,
		Duration:    duration,
		Difficulty:  difficulty,
		TokenReward: exerciseReward,
		Content:     models.ExerciseContent{Instructions: instructions},
	}
}

func lab(id int, title, duration, difficulty, instructions string) models.Lesson {
	return models.Lesson{
		ID:          id,
		Title:       title,
		Duration:    duration,
		Difficulty:  difficulty,
		TokenReward: labReward,
		Content:     models.LabContent{Instructions: instructions},
	}
}

func reading(id int, title, duration, difficulty, body string) models.Lesson {
	return models.Lesson{
		ID:          id,
		Title:       title,
		Duration:    duration,
		Difficulty:  difficulty,
		TokenReward: readingReward,
		Content:     models.ReadingContent{Body: body},
	}
}

var blockchainBasicsQuiz = models.Quiz{
	Title: "Chapter Quiz",
	Questions: []models.Question{
		{
			Question: "What is a blockchain?",
			Answers: []string{
				"A type of cryptocurrency",
				"A distributed ledger technology",
				"A programming language",
				"A database management system",
			},
			CorrectAnswer: 1,
			Explanation:   "A blockchain is a ledger replicated across many nodes.",
		},
		{
			Question: "Which consensus mechanism does Bitcoin use?",
			Answers: []string{
				"Proof of Stake",
				"Proof of Work",
				"Delegated Proof of Stake",
				"Proof of Authority",
			},
			CorrectAnswer: 1,
		},
	},
}

var consensusQuiz = models.Quiz{
	Title: "Consensus Mechanisms",
	Questions: []models.Question{
		{
			Question:      "What does a validator lock up in Proof of Stake?",
			Answers:       []string{"Hash power", "Tokens", "Storage", "Bandwidth"},
			CorrectAnswer: 1,
		},
		{
			Question:      "What makes rewriting Proof of Work history expensive?",
			Answers:       []string{"Signatures", "Re-doing the accumulated work", "Gas fees", "Node count"},
			CorrectAnswer: 1,
			Explanation:   "An attacker must redo the work of every later block.",
		},
	},
}

var smartContractQuiz = models.Quiz{
	Title: "Smart Contract Basics",
	Questions: []models.Question{
		{
			Question:      "Where do Ethereum smart contracts execute?",
			Answers:       []string{"In the browser", "In the Ethereum Virtual Machine", "On the miner's GPU", "In a Docker container"},
			CorrectAnswer: 1,
		},
		{
			Question:      "What does gas pay for?",
			Answers:       []string{"Storage of the wallet", "Computation and storage on chain", "Internet traffic", "Block explorers"},
			CorrectAnswer: 1,
		},
	},
}

var defiQuiz = models.Quiz{
	Title: "DeFi Fundamentals",
	Questions: []models.Question{
		{
			Question:      "What replaces the intermediary in DeFi lending?",
			Answers:       []string{"A bank", "A smart contract", "A broker", "An exchange"},
			CorrectAnswer: 1,
		},
		{
			Question:      "What do liquidity providers receive?",
			Answers:       []string{"Nothing", "A share of trading fees", "Voting rights only", "Mining rewards"},
			CorrectAnswer: 1,
		},
	},
}

func defaultCourses() []models.Course {
	return []models.Course{
		{
			ID:          1,
			Title:       "Blockchain Fundamentals",
			Description: "Learn the basics of blockchain technology, consensus mechanisms, and cryptographic principles.",
			Level:       "Beginner",
			Duration:    "6 weeks",
			Image:       "🔗",
			Chapters: []models.Chapter{
				{
					ID:          1,
					Title:       "Introduction to Blockchain",
					TokenReward: 100,
					Lessons: []models.Lesson{
						video(1, "What is Blockchain?", "15 min", "Beginner"),
						video(2, "History of Blockchain", "20 min", "Beginner"),
						reading(3, "Blockchain vs Traditional Systems", "25 min", "Beginner",
							"Traditional systems trust a central operator; blockchains replace that trust with replicated, verifiable state."),
						quiz(4, "Quiz: Blockchain Basics", "10 min", "Beginner", blockchainBasicsQuiz),
					},
				},
				{
					ID:          2,
					Title:       "Cryptographic Foundations",
					TokenReward: 150,
					Lessons: []models.Lesson{
						video(5, "Hash Functions", "30 min", "Beginner"),
						video(6, "Public Key Cryptography", "35 min", "Intermediate"),
						video(7, "Digital Signatures", "25 min", "Intermediate"),
						exercise(8, "Practical Exercise: Creating Keys", "45 min", "Intermediate",
							"Generate a secp256k1 key pair and derive its address."),
					},
				},
				{
					ID:          3,
					Title:       "Consensus Mechanisms",
					TokenReward: 150,
					Lessons: []models.Lesson{
						video(9, "Proof of Work", "40 min", "Intermediate"),
						video(10, "Proof of Stake", "35 min", "Intermediate"),
						video(11, "Other Consensus Algorithms", "30 min", "Intermediate"),
						quiz(12, "Quiz: Consensus Mechanisms", "15 min", "Intermediate", consensusQuiz),
					},
				},
			},
		},
		{
			ID:          2,
			Title:       "Smart Contract Development",
			Description: "Master Solidity programming and build decentralized applications on Ethereum.",
			Level:       "Intermediate",
			Duration:    "8 weeks",
			Image:       "📜",
			Chapters: []models.Chapter{
				{
					ID:          1,
					Title:       "Introduction to Smart Contracts",
					TokenReward: 150,
					Lessons: []models.Lesson{
						video(1, "What are Smart Contracts?", "20 min", "Intermediate"),
						video(2, "Ethereum Virtual Machine", "25 min", "Intermediate"),
						video(3, "Gas and Transaction Costs", "30 min", "Intermediate"),
						quiz(4, "Quiz: Smart Contract Basics", "10 min", "Intermediate", smartContractQuiz),
					},
				},
				{
					ID:          2,
					Title:       "Solidity Fundamentals",
					TokenReward: 200,
					Lessons: []models.Lesson{
						video(5, "Solidity Syntax", "45 min", "Intermediate"),
						video(6, "Variables and Data Types", "40 min", "Intermediate"),
						video(7, "Functions and Modifiers", "50 min", "Intermediate"),
						lab(8, "Lab: Your First Smart Contract", "60 min", "Intermediate",
							"Write, compile and deploy a counter contract to a local test network."),
					},
				},
			},
		},
		{
			ID:          3,
			Title:       "DeFi Protocols",
			Description: "Explore decentralized finance protocols, yield farming, and liquidity pools.",
			Level:       "Advanced",
			Duration:    "7 weeks",
			Image:       "💰",
			Chapters: []models.Chapter{
				{
					ID:          1,
					Title:       "Introduction to DeFi",
					TokenReward: 175,
					Lessons: []models.Lesson{
						video(1, "What is DeFi?", "25 min", "Advanced"),
						video(2, "DeFi vs Traditional Finance", "30 min", "Advanced"),
						video(3, "DeFi Ecosystem Overview", "35 min", "Advanced"),
						quiz(4, "Quiz: DeFi Fundamentals", "15 min", "Advanced", defiQuiz),
					},
				},
				{
					ID:          2,
					Title:       "Lending and Borrowing",
					TokenReward: 225,
					Lessons: []models.Lesson{
						video(5, "Compound Protocol", "45 min", "Advanced"),
						video(6, "Aave Protocol", "50 min", "Advanced"),
						video(7, "Yield Farming Strategies", "60 min", "Advanced"),
						lab(8, "Lab: DeFi Lending", "90 min", "Advanced",
							"Supply and borrow against a forked lending pool."),
					},
				},
			},
		},
	}
}
