package resource

// Record is an untyped resource item for endpoints without a fixed schema.
type Record = map[string]interface{}

type (
	Branch struct {
		ID         int    `json:"id,omitempty"`
		Name       string `json:"name"`
		BranchCode string `json:"branch_code,omitempty"`
		Location   string `json:"location,omitempty"`
		Company    int    `json:"company,omitempty"`
	}

	PolicyHolder struct {
		ID           int    `json:"id,omitempty"`
		PolicyNumber string `json:"policy_number,omitempty"`
		CustomerName string `json:"customer_name,omitempty"`
		Customer     int    `json:"customer,omitempty"`
		Branch       int    `json:"branch,omitempty"`
		Agent        int    `json:"agent,omitempty"`
		Policy       int    `json:"policy,omitempty"`
		SumAssured   string `json:"sum_assured,omitempty"`
		Status       string `json:"status,omitempty"`
	}

	SalesAgent struct {
		ID                    int    `json:"id,omitempty"`
		AgentCode             string `json:"agent_code,omitempty"`
		Branch                int    `json:"branch,omitempty"`
		Status                string `json:"status,omitempty"`
		CommissionRate        string `json:"commission_rate,omitempty"`
		TotalPoliciesSold     int    `json:"total_policies_sold,omitempty"`
		TotalPremiumCollected string `json:"total_premium_collected,omitempty"`
		UserDetails           *User  `json:"user_details,omitempty"`
	}

	AgentReport struct {
		ID                int    `json:"id,omitempty"`
		Agent             int    `json:"agent,omitempty"`
		Branch            int    `json:"branch,omitempty"`
		ReportDate        string `json:"report_date,omitempty"`
		PoliciesSold      int    `json:"policies_sold,omitempty"`
		PremiumCollected  string `json:"premium_collected,omitempty"`
		TargetAchievement string `json:"target_achievement,omitempty"`
	}

	Customer struct {
		ID          int    `json:"id,omitempty"`
		FirstName   string `json:"first_name,omitempty"`
		LastName    string `json:"last_name,omitempty"`
		Email       string `json:"email,omitempty"`
		PhoneNumber string `json:"phone_number,omitempty"`
		Address     string `json:"address,omitempty"`
	}

	Company struct {
		ID      int    `json:"id,omitempty"`
		Name    string `json:"name"`
		Address string `json:"address,omitempty"`
	}

	User struct {
		ID          int    `json:"id,omitempty"`
		Username    string `json:"username"`
		Email       string `json:"email,omitempty"`
		FirstName   string `json:"first_name,omitempty"`
		LastName    string `json:"last_name,omitempty"`
		UserType    string `json:"user_type,omitempty"`
		Branch      *int   `json:"branch,omitempty"`
		IsActive    bool   `json:"is_active,omitempty"`
		Password    string `json:"password,omitempty"`
		LastLogin   string `json:"last_login,omitempty"`
		DateJoined  string `json:"date_joined,omitempty"`
		IsSuperuser bool   `json:"is_superuser,omitempty"`
	}

	Policy struct {
		ID             int         `json:"id,omitempty"`
		Name           string      `json:"name"`
		PolicyCode     string      `json:"policy_code,omitempty"`
		PolicyType     string      `json:"policy_type,omitempty"`
		BaseMultiplier string      `json:"base_multiplier,omitempty"`
		MinSumAssured  string      `json:"min_sum_assured,omitempty"`
		MaxSumAssured  string      `json:"max_sum_assured,omitempty"`
		MinAge         int         `json:"min_age,omitempty"`
		MaxAge         int         `json:"max_age,omitempty"`
		Description    string      `json:"description,omitempty"`
		CreatedAt      string      `json:"created_at,omitempty"`
		GSVRates       []GSVRate   `json:"gsv_rates,omitempty"`
		SSVConfigs     []SSVConfig `json:"ssv_configs,omitempty"`
	}

	GSVRate struct {
		ID      int    `json:"id,omitempty"`
		Policy  int    `json:"policy,omitempty"`
		MinYear int    `json:"min_year"`
		MaxYear int    `json:"max_year"`
		Rate    string `json:"rate"`
	}

	SSVConfig struct {
		ID               int    `json:"id,omitempty"`
		Policy           int    `json:"policy,omitempty"`
		MinYear          int    `json:"min_year"`
		MaxYear          int    `json:"max_year"`
		SSVFactor        string `json:"ssv_factor"`
		EligibilityYears int    `json:"eligibility_years"`
		CustomCondition  string `json:"custom_condition"`
	}

	Loan struct {
		ID               int    `json:"id,omitempty"`
		PolicyHolder     int    `json:"policy_holder,omitempty"`
		LoanAmount       string `json:"loan_amount,omitempty"`
		InterestRate     string `json:"interest_rate,omitempty"`
		RemainingBalance string `json:"remaining_balance,omitempty"`
		AccruedInterest  string `json:"accrued_interest,omitempty"`
		LoanStatus       string `json:"loan_status,omitempty"`
		LastInterestDate string `json:"last_interest_date,omitempty"`
		CreatedAt        string `json:"created_at,omitempty"`
		UpdatedAt        string `json:"updated_at,omitempty"`
	}

	LoanRepayment struct {
		ID               int    `json:"id,omitempty"`
		Loan             int    `json:"loan"`
		Amount           string `json:"amount"`
		RepaymentDate    string `json:"repayment_date,omitempty"`
		RepaymentType    string `json:"repayment_type,omitempty"`
		RemainingBalance string `json:"remaining_loan_balance,omitempty"`
	}

	AgentApplication struct {
		ID              int    `json:"id,omitempty"`
		Branch          int    `json:"branch,omitempty"`
		BranchName      string `json:"branch_name,omitempty"`
		FirstName       string `json:"first_name,omitempty"`
		LastName        string `json:"last_name,omitempty"`
		Email           string `json:"email,omitempty"`
		PhoneNumber     string `json:"phone_number,omitempty"`
		Address         string `json:"address,omitempty"`
		Status          string `json:"status,omitempty"`
		RejectionReason string `json:"rejection_reason,omitempty"`
		CreatedAt       string `json:"created_at,omitempty"`
	}

	MortalityRate struct {
		ID            int     `json:"id,omitempty"`
		AgeGroupStart int     `json:"age_group_start"`
		AgeGroupEnd   int     `json:"age_group_end"`
		Rate          float64 `json:"rate"`
	}

	// DashboardStats summarizes the portfolio for the home screen.
	DashboardStats struct {
		TotalPolicies   int     `json:"totalPolicies"`
		ActivePolicies  int     `json:"activePolicies"`
		TotalCustomers  int     `json:"totalCustomers"`
		TotalAgents     int     `json:"totalAgents"`
		TotalPremium    float64 `json:"totalPremium"`
		PendingClaims   int     `json:"pendingClaims"`
		DuePayments     float64 `json:"duePayments"`
		ActiveLoans     int     `json:"activeLoans"`
		TotalLoanAmount float64 `json:"totalLoanAmount"`
		TotalRepayments float64 `json:"totalRepayments"`
		PendingLoans    int     `json:"pendingLoans"`
	}
)

// ApplicationStatus is an agent application review decision
type ApplicationStatus string

const (
	ApplicationApproved ApplicationStatus = "APPROVED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)
