package validator

// Stock schemas for common forms. Each call returns a fresh Schema.

func UserRegistrationSchema() Schema {
	return Schema{
		"firstName": {
			Required().WithMessage("First name is required"),
			MinLength(2).WithMessage("First name must be at least 2 characters"),
			MaxLength(50).WithMessage("First name must be less than 50 characters"),
		},
		"lastName": {
			Required().WithMessage("Last name is required"),
			MinLength(2).WithMessage("Last name must be at least 2 characters"),
			MaxLength(50).WithMessage("Last name must be less than 50 characters"),
		},
		"email": {
			Required().WithMessage("Email is required"),
			Email(),
		},
		"password": {
			Required().WithMessage("Password is required"),
			MinLength(8).WithMessage("Password must be at least 8 characters"),
			StrongPassword().WithMessage("Password must contain uppercase, lowercase, number and special character"),
		},
	}
}

func ContactFormSchema() Schema {
	return Schema{
		"name": {
			Required().WithMessage("Name is required"),
			MinLength(2).WithMessage("Name must be at least 2 characters"),
		},
		"email": {
			Required().WithMessage("Email is required"),
			Email(),
		},
		"subject": {
			Required().WithMessage("Subject is required"),
			MinLength(5).WithMessage("Subject must be at least 5 characters"),
		},
		"message": {
			Required().WithMessage("Message is required"),
			MinLength(10).WithMessage("Message must be at least 10 characters"),
			MaxLength(1000).WithMessage("Message must be less than 1000 characters"),
		},
	}
}

func LoginFormSchema() Schema {
	return Schema{
		"email": {
			Required().WithMessage("Email is required"),
			Email(),
		},
		"password": {
			Required().WithMessage("Password is required"),
		},
	}
}

func ProfileFormSchema() Schema {
	return Schema{
		"displayName": {
			Required().WithMessage("Display name is required"),
			MinLength(3).WithMessage("Display name must be at least 3 characters"),
			MaxLength(30).WithMessage("Display name must be less than 30 characters"),
		},
		"bio":     {MaxLength(500).WithMessage("Bio must be less than 500 characters")},
		"website": {URL()},
		"phone":   {Phone()},
	}
}
