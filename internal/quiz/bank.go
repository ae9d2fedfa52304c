package quiz

// Question bank, grouped by difficulty.
var (
	easyQuestions = []Question{
		{
			Text:    "What is AWS?",
			Options: [4]string{"A social media platform", "A cloud service provider", "A mobile operating system", "A programming framework"},
			Answer:  1,
		},
		{
			Text:    "What is cloud computing?",
			Options: [4]string{"Running programs offline", "Delivering IT resources over the internet", "Buying physical servers for local use", "A way to store emails only"},
			Answer:  1,
		},
		{
			Text:    "What is an AWS Region?",
			Options: [4]string{"A single data center", "A group of Availability Zones", "A private network", "A type of storage"},
			Answer:  1,
		},
		{
			Text:    "What is an Availability Zone (AZ)?",
			Options: [4]string{"A networking tool", "A physical data center inside a Region", "A type of EC2 instance", "A billing category"},
			Answer:  1,
		},
		{
			Text:    "What is Amazon EC2 used for?",
			Options: [4]string{"Creating databases", "Running virtual servers", "Managing billing", "Storing objects"},
			Answer:  1,
		},
		{
			Text:    "What does S3 store?",
			Options: [4]string{"Virtual machines", "Object data like images, files, videos", "SQL queries", "Lambda functions"},
			Answer:  1,
		},
		{
			Text:    "Which AWS service is serverless?",
			Options: [4]string{"EC2", "Lambda", "EBS", "CloudFront"},
			Answer:  1,
		},
		{
			Text:    "What is Auto Scaling used for?",
			Options: [4]string{"Encrypting data", "Automatically adding or removing EC2 instances", "Creating IAM users", "Running SQL databases"},
			Answer:  1,
		},
		{
			Text:    "Which service provides NoSQL storage?",
			Options: [4]string{"RDS", "DynamoDB", "Redshift", "EFS"},
			Answer:  1,
		},
		{
			Text:    "What does IAM stand for?",
			Options: [4]string{"Internal Access Management", "Identity and Access Management", "Internet Allocation Module", "Instance Access Monitoring"},
			Answer:  1,
		},
		{
			Text:    "What is the purpose of a Security Group?",
			Options: [4]string{"To monitor billing", "To control inbound/outbound traffic for EC2", "To increase storage capacity", "To create VPCs"},
			Answer:  1,
		},
		{
			Text:    "What is RDS used for?",
			Options: [4]string{"Running NoSQL queries", "Hosting managed relational databases", "Storing images", "Running container apps"},
			Answer:  1,
		},
		{
			Text:    "What does EBS provide?",
			Options: [4]string{"Block storage for EC2", "Object storage for files", "SQL reporting", "Networking firewalls"},
			Answer:  0,
		},
		{
			Text:    "Which AWS service allows uploading code without managing servers?",
			Options: [4]string{"S3", "Lambda", "CloudWatch", "Gateway"},
			Answer:  1,
		},
		{
			Text:    "What does VPC stand for?",
			Options: [4]string{"Virtual Private Cloud", "Virtual Processing Center", "Visual Private Console", "Virtual Packet Container"},
			Answer:  0,
		},
		{
			Text:    "What is EFS mainly used for?",
			Options: [4]string{"Long-term archival", "Shared file storage across multiple EC2 instances", "Storing IAM users", "Creating DNS zones"},
			Answer:  1,
		},
		{
			Text:    "What is the benefit of multiple Availability Zones?",
			Options: [4]string{"Easier billing", "High availability and fault tolerance", "Faster IAM creation", "Free storage"},
			Answer:  1,
		},
	}
	mediumQuestions = []Question{
		{
			Text:    "Which AWS model describes how responsibilities are shared?",
			Options: [4]string{"Pay-as-you-go Model", "Multi-AZ Model", "Shared Responsibility Model", "Elasticity Model"},
			Answer:  2,
		},
		{
			Text:    "Which EC2 pricing option is best for long-term, steady workloads?",
			Options: [4]string{"Spot Instances", "On-Demand", "Reserved Instances", "Dedicated Hosts"},
			Answer:  2,
		},
		{
			Text:    "What is the main purpose of an Elastic Load Balancer (ELB)?",
			Options: [4]string{"Running SQL queries", "Distributing incoming traffic across resources", "Encrypting data", "Storing backups"},
			Answer:  1,
		},
		{
			Text:    "For unpredictable workloads, which compute option is most efficient?",
			Options: [4]string{"Reserved Instances", "Lambda", "On-Prem Servers", "Dedicated Hosts"},
			Answer:  1,
		},
		{
			Text:    "Which AWS storage option provides shared file storage for multiple EC2 instances?",
			Options: [4]string{"EBS", "EFS", "S3 Glacier", "IAM"},
			Answer:  1,
		},
		{
			Text:    "What does DynamoDB automatically manage for you?",
			Options: [4]string{"Index creation only", "Scaling, backups, and performance", "EC2 instance launching", "SQL optimization"},
			Answer:  1,
		},
		{
			Text:    "What type of database engine does RDS NOT support?",
			Options: [4]string{"MySQL", "PostgreSQL", "Oracle", "MongoDB"},
			Answer:  3,
		},
		{
			Text:    "What does S3 Versioning help with?",
			Options: [4]string{"Reducing storage cost", "Recovering accidentally deleted or overwritten files", "Encrypting objects", "Faster upload speed"},
			Answer:  1,
		},
		{
			Text:    "What is the purpose of a NAT Gateway?",
			Options: [4]string{"Provides internet access to public subnets", "Allows instances in private subnets to access the internet", "Blocks all internet traffic", "Creates IAM policies"},
			Answer:  1,
		},
		{
			Text:    "What does it mean that Security Groups are stateful?",
			Options: [4]string{"They remember past logins", "Return traffic is automatically allowed", "They block all outbound traffic", "They encrypt all data"},
			Answer:  1,
		},
		{
			Text:    "In Lambda, what causes a 'cold start'?",
			Options: [4]string{"Low storage space", "Creating a new execution environment", "High traffic load", "Incorrect IAM permissions"},
			Answer:  1,
		},
		{
			Text:    "What is the advantage of S3 Intelligent-Tiering?",
			Options: [4]string{"It automatically moves data to cheaper storage tiers", "It increases object size limits", "It encrypts all objects", "It improves upload speed"},
			Answer:  0,
		},
		{
			Text:    "Which AWS service manages Docker containers without provisioning EC2 servers?",
			Options: [4]string{"EC2", "Fargate", "ECR", "CloudFront"},
			Answer:  1,
		},
		{
			Text:    "What is a benefit of Multi-AZ deployment in RDS?",
			Options: [4]string{"Faster development", "Automatic failover during outages", "Lower cost", "No backups required"},
			Answer:  1,
		},
		{
			Text:    "What does a Route Table in a VPC do?",
			Options: [4]string{"Controls how traffic is directed in the network", "Manages IAM roles", "Stores DNS records", "Encrypts packets"},
			Answer:  0,
		},
		{
			Text:    "What AWS service is best suited for caching frequently accessed data?",
			Options: [4]string{"S3 Glacier", "ElastiCache", "DynamoDB Streams", "EBS"},
			Answer:  1,
		},
	}
	hardQuestions = []Question{
		{
			Text:    "Which scenario BEST fits using Spot Instances?",
			Options: [4]string{"Running critical production apps", "Running fault-tolerant workloads like batch processing", "Hosting a relational database", "Storing long-term backups"},
			Answer:  1,
		},
		{
			Text:    "What is a major cause of high latency in Lambda cold starts?",
			Options: [4]string{"IAM misconfiguration", "The function must initialize a new runtime environment", "Lack of S3 storage", "Network ACL restrictions"},
			Answer:  1,
		},
		{
			Text:    "DynamoDB distributes data across partitions based on:",
			Options: [4]string{"Object size", "Sort key", "Partition key", "Lambda triggers"},
			Answer:  2,
		},
		{
			Text:    "What is a common use of VPC Peering?",
			Options: [4]string{"To connect two VPCs privately without going over the internet", "To reduce S3 storage cost", "To auto-scale EC2 instances", "To manage IAM roles"},
			Answer:  0,
		},
		{
			Text:    "What is the key difference between Security Groups and NACLs?",
			Options: [4]string{"Security Groups are stateless; NACLs are stateful", "Security Groups are stateful; NACLs are stateless", "Both are stateless", "Both are stateful"},
			Answer:  1,
		},
		{
			Text:    "Why is Aurora faster than traditional RDS engines?",
			Options: [4]string{"It uses a NoSQL architecture", "It stores data across a distributed storage layer separate from compute", "It runs only on EC2 Spot Instances", "It uses Lambda behind the scenes"},
			Answer:  1,
		},
		{
			Text:    "S3 Glacier Deep Archive is ideal for:",
			Options: [4]string{"Real-time AI workloads", "Data accessed once a week", "Rarely accessed data with retrieval times of hours", "Running container apps"},
			Answer:  2,
		},
		{
			Text:    "What is the main benefit of using AWS Fargate over ECS with EC2?",
			Options: [4]string{"Higher memory capacity", "Zero server management - AWS handles the compute layer", "Guaranteed lowest cost", "Easier IAM configuration"},
			Answer:  1,
		},
		{
			Text:    "What happens during an RDS failover in Multi-AZ deployments?",
			Options: [4]string{"Database becomes read-only", "DNS automatically switches to a standby replica", "You must restart the database manually", "All data must be restored from backup"},
			Answer:  1,
		},
		{
			Text:    "What is the purpose of a VPC Endpoint for S3?",
			Options: [4]string{"Encrypt S3 objects", "Provide private access to S3 without using the public internet", "Increase S3 bucket storage", "Accelerate downloads"},
			Answer:  1,
		},
		{
			Text:    "Which AWS service automatically provisions and manages container clusters?",
			Options: [4]string{"S3", "IAM", "EKS", "EFS"},
			Answer:  2,
		},
		{
			Text:    "What is the main advantage of DynamoDB Global Tables?",
			Options: [4]string{"Lower storage cost", "Multi-region, fully active replication for low-latency access", "Automatic SQL query optimization", "Faster Lambda cold starts"},
			Answer:  1,
		},
		{
			Text:    "What happens when an S3 bucket has versioning enabled and an object is deleted?",
			Options: [4]string{"S3 removes it permanently", "A delete marker is added, and older versions remain", "All versions are deleted", "Objects are moved to Glacier automatically"},
			Answer:  1,
		},
		{
			Text:    "What is AWS Transit Gateway used for?",
			Options: [4]string{"Running serverless code", "Centralized connectivity between multiple VPCs and on-prem networks", "Managing RDS backups", "Encrypting Lambda functions"},
			Answer:  1,
		},
	}
)
