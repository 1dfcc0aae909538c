package catalog

import (
	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	"github.com/m04kA/SMC-ClassBookingService/pkg/ptr"
)

// DefaultClasses каталог классов учебного центра
func DefaultClasses() []domain.ClassOffering {
	return []domain.ClassOffering{
		{
			ID:          "adult-first-aid-cpr-aed",
			Title:       "Adult First Aid, CPR AED and Infant/Child CPR AED",
			Price:       ptr.Ptr(80.0),
			Duration:    "4 hours",
			Description: "Comprehensive training covering adult and pediatric CPR, AED usage, and First Aid. This complete course prepares you to handle emergency situations for all age groups with confidence.",
			Includes: []string{
				"Adult CPR and AED training",
				"Infant and Child CPR techniques",
				"First Aid certification",
				"Wound care and emergency response",
				"2-year certification upon completion",
				"Hands-on practice with mannequins",
				"Digital learning materials",
				"Small class size for personalized attention",
			},
			AvailableForBooking: true,
		},
		{
			ID:          "bloodborne-pathogens",
			Title:       "Bloodborne Pathogens (BBP)",
			Price:       ptr.Ptr(60.0),
			Duration:    "2 hours",
			Description: "OSHA-compliant training for handling bloodborne pathogens and maintaining workplace safety. Essential for healthcare workers and first responders.",
			Includes: []string{
				"OSHA-compliant infection control training",
				"How to handle blood and bodily fluid exposure",
				"Use of PPE (Personal Protective Equipment)",
				"Understanding BBP standards in the workplace",
				"Digital certificate of completion",
			},
			AvailableForBooking: true,
		},
		{
			ID:          "defensive-driving",
			Title:       "Defensive Driver Safety",
			Price:       ptr.Ptr(80.0),
			Duration:    "3 hours",
			Description: "Comprehensive defensive driving course focusing on safety, risk management, and emergency response for both personal and commercial drivers.",
			Includes: []string{
				"Safe driving techniques and risk management",
				"Emergency response handling",
				"Driver attitude and reaction control",
				"Rules for commercial/fleet drivers",
				"Completion certificate",
			},
			AvailableForBooking: true,
		},
		{
			ID:          "workday-training",
			Title:       "Workday Training (Tier 1 & 2)",
			Price:       ptr.Ptr(80.0),
			Duration:    "3 hours",
			Description: "Master Workday navigation and workflows with hands-on training. Perfect for employees and HR professionals looking to enhance their system proficiency.",
			Includes: []string{
				"Intro to Workday navigation and workflows",
				"Employee self-service and task processing",
				"HR/Payroll task handling (Tier 2)",
				"Hands-on practice with simulations",
				"Helpful take-home reference guides",
			},
			AvailableForBooking: true,
			ContactOnly:         true,
		},
		{
			ID:          "ois",
			Title:       "Oregon Intervention System (OIS)",
			Duration:    "TBD",
			Description: "Safe and respectful behavioral intervention training in line with Oregon state standards. Required for support professionals working with vulnerable populations.",
			Includes: []string{
				"Behavioral intervention techniques",
				"State-compliant training methods",
				"Safety protocols and procedures",
				"Hands-on practice scenarios",
				"Certification upon completion",
			},
			ComingSoon: true,
		},
		{
			ID:          "firearm-safety",
			Title:       "Firearm Safety & Responsibility",
			Duration:    "TBD",
			Description: "Comprehensive firearm safety training covering safe handling, legal responsibilities, and secure storage. Ideal for civilians, new owners, and security personnel.",
			Includes: []string{
				"Safe firearm handling techniques",
				"Legal responsibilities and regulations",
				"Secure storage practices",
				"Emergency response protocols",
				"Hands-on safety demonstrations",
			},
			ComingSoon: true,
		},
	}
}
