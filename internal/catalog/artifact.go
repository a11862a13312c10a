package catalog

import "encoding/base64"

// Artifact is a downloadable work file attached to a simulation, such as
// a broken source file or a dataset the questions are asked about.
type Artifact struct {
	Filename string
	MIMEType string
	content  string
}

// Content returns the raw file bytes.
func (a *Artifact) Content() []byte {
	return []byte(a.content)
}

// Base64 returns the file content encoded for transfer.
func (a *Artifact) Base64() string {
	return base64.StdEncoding.EncodeToString([]byte(a.content))
}

// Size returns the artifact size in bytes.
func (a *Artifact) Size() int {
	return len(a.content)
}

var shoppingCartArtifact = &Artifact{
	Filename: "shopping_cart_debug.py",
	MIMEType: "text/x-python-script",
	content: `# E-Commerce Shopping Cart Bug Fix Challenge
# The following Python code has several bugs that are causing issues in production

class ShoppingCart:
    def __init__(self):
        self.items = []
        self.discount = 0

    def add_item(self, name, price, quantity):
        item = {
            'name': name,
            'price': price,
            'quantity': quantity
        }
        self.items.append(item)

    def remove_item(self, name):
        for item in self.items:
            if item['name'] = name:
                self.items.remove(item)
                break

    def calculate_total(self):
        total = 0
        for item in self.items:
            total += item['price'] * item['quantity']

        if self.discount > 0:
            total = total - (total * self.discount / 100)

        return total

    def apply_discount(self, discount_percent):
        if discount_percent > 100:
            self.discount = 0
        else:
            self.discount = discount_percent

    def get_item_count(self):
        count = 0
        for item in self.items:
            count += item['quantity']
        return count

    def checkout(self):
        if len(self.items) == 0:
            return "Cart is empty"

        total = self.calculate_total()
        return f"Order total: ${total:.2f}"

cart = ShoppingCart()
cart.add_item("Laptop", 999.99, 1)
cart.add_item("Mouse", 29.99, 2)
cart.apply_discount(10)

print(f"Items in cart: {cart.get_item_count()}")
print(f"Total: {cart.checkout()}")

# Find and list all the bugs in the code above
`,
}

var passwordHashesArtifact = &Artifact{
	Filename: "password_hashes.txt",
	MIMEType: "text/plain",
	content: `# Password Hash Cracking Challenge
# Find the original passwords for these MD5 hashes

Hash List:
482c811da5d5b4bc6d497ffa98491e38
21232f297a57a5a743894a0e4a801fc3
b7a875fc1ea228b9061041b7cec4bd3c
d8578edf8458ce06fbc5bb76a58c5ca4
e10adc3949ba59abbe56e057f20f883e

# Common Password Wordlist:
password
admin
letmein
qwerty
123456
password123
welcome
monkey
dragon
master
github
login
`,
}

var networkConfigArtifact = &Artifact{
	Filename: "network_config.txt",
	MIMEType: "text/plain",
	content: `# Corporate Network Configuration Audit
# Router: core-gw-01

hostname core-gw-01
username admin password admin
!
line vty 0 4
 transport input telnet
 login local
!
interface GigabitEthernet0/0
 ip address 192.168.1.1 255.255.255.0
 no shutdown
!
snmp-server community public RO
ip http server
no ip http secure-server
!
# Notes from last audit:
# - Default credentials never rotated since install
# - Telnet still enabled for remote management
# - SNMP community string left at factory default
`,
}

var churnDatasetArtifact = &Artifact{
	Filename: "customer_churn_data.csv",
	MIMEType: "text/csv",
	content: `CustomerID,Tenure_Months,Contract,Monthly_Charges,Online_Security,Tech_Support,Churn
1001,2,Month-to-month,85.70,No,No,Yes
1002,34,Two year,56.95,Yes,No,No
1003,4,Month-to-month,94.40,No,No,Yes
1004,45,One year,42.30,Yes,Yes,No
1005,8,Month-to-month,99.65,No,Yes,Yes
1006,22,One year,89.10,No,No,No
1007,1,Month-to-month,104.80,No,No,Yes
1008,62,Two year,29.75,Yes,Yes,No
1009,13,Month-to-month,103.70,No,No,Yes
1010,58,Two year,55.20,Yes,Yes,No
`,
}

var monitoringRequirementsArtifact = &Artifact{
	Filename: "monitoring_requirements.txt",
	MIMEType: "text/plain",
	content: `# Application Monitoring Requirements
# Service: checkout-api (production)

SLOs:
- p95 response time under 300ms
- Error rate under 0.1% over 5 minutes
- Availability 99.9% monthly

Signals to cover:
- Latency (user-facing response time)
- Traffic (requests per second)
- Errors (5xx rate, timeout rate)
- Saturation (CPU, memory, connection pool)

Stack:
- Metrics collection: Prometheus
- Dashboards: Grafana
- Alerting: Alertmanager with on-call paging
`,
}

var awsRequirementsArtifact = &Artifact{
	Filename: "aws_requirements.txt",
	MIMEType: "text/plain",
	content: `# AWS Infrastructure Requirements
# Project: production web platform migration

Must support:
- Static assets and user uploads in object storage (S3)
- Managed DNS with health-checked failover (Route 53)
- Load-balanced compute across two availability zones
- Managed relational database with automated backups
- CDN in front of all public endpoints
- Centralized logging and metrics

Target service list (12 services):
EC2, S3, RDS, Route 53, CloudFront, ELB, VPC, IAM,
CloudWatch, SNS, Lambda, KMS
`,
}

var userResearchArtifact = &Artifact{
	Filename: "user_research_notes.txt",
	MIMEType: "text/plain",
	content: `# User Research Session Notes
# Participants: 20 (remote interviews, 45 minutes each)

Top pain points by mention count:
- slow loading (17 mentions)
- confusing navigation (11 mentions)
- missing export options (8 mentions)

Most requested improvements:
- dark mode
- faster dashboard load
- bulk editing

Verbatims:
"The dashboard takes forever on Monday mornings."
"I just want a dark mode so my eyes stop hurting."
`,
}
