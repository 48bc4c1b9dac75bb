package session

const (
	mainMenu = "\n--- Banking System ---\n" +
		"1. Register user\n" +
		"2. Access account\n" +
		"3. Exit\n"

	accountMenu = "\n--- Welcome, %s ---\n" +
		"1. Deposit\n" +
		"2. Withdraw\n" +
		"3. View statement\n" +
		"4. Back\n"

	registerHeader = "\n--- User Registration ---"
)

// Prompts
const (
	promptOption        = "Choose an option: "
	promptFullName      = "Enter full name: "
	promptNationalID    = "Enter national ID (digits only): "
	promptBranch        = "Enter branch number (4 digits): "
	promptAccountNumber = "Enter account number (6 digits): "
	promptAccessID      = "Enter national ID to access the account: "
	promptDeposit       = "Enter deposit amount: "
	promptWithdraw      = "Enter withdrawal amount: "
)

// Results
const (
	msgRegistered       = "User registered successfully!"
	msgBadNationalID    = "Invalid or already registered national ID."
	msgInvalidBranch    = "Invalid branch number."
	msgBadAccountNumber = "Invalid account number or already in use at this branch."
	msgUserNotFound     = "User not found."
	msgDeposited        = "Deposit of %s completed successfully!\n"
	msgWithdrawn        = "Withdrawal of %s completed successfully!\n"
	msgInvalidDeposit   = "Invalid deposit amount."
	msgInvalidWithdraw  = "Invalid withdrawal amount."
	msgLimitReached     = "Daily transaction limit reached."
	msgInsufficient     = "Insufficient balance for withdrawal."
	msgUnparsableAmount = "Invalid amount."
	msgStatementFailed  = "Could not render the statement."
	msgBackToMain       = "Returning to main menu..."
	msgGoodbye          = "Exiting the system. Goodbye!"
	msgInvalidOption    = "Invalid option. Try again."
	msgUnexpected       = "Operation failed."
)
