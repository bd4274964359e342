package utils

import (
	"math/rand"
	"strings"
)

var digits = "0123456789"

func GenerateRandomOTP() string {
	var sb strings.Builder
	for i := 0; i < 6; i++ {
		sb.WriteByte(digits[rand.Intn(len(digits))])
	}
	return sb.String()
}

var passwordCharacters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func GenerateRandomPassword(length int) string {
	var sb strings.Builder
	for i := 0; i < length; i++ {
		sb.WriteByte(passwordCharacters[rand.Intn(len(passwordCharacters))])
	}
	return sb.String()
}

var firstNames = []string{
	"Alice", "Ben", "Carla", "David", "Elena", "Farid", "Grace", "Hiro",
	"Isabel", "James", "Katya", "Liam", "Maya", "Noah", "Olivia", "Priya",
	"Quentin", "Rosa", "Sam", "Tara",
}

var lastNames = []string{
	"Anderson", "Brown", "Chen", "Diaz", "Evans", "Fischer", "Garcia",
	"Huang", "Ivanov", "Johnson", "Kim", "Lopez", "Miller", "Nguyen",
	"Okafor", "Patel", "Quinn", "Rossi", "Singh", "Taylor",
}

func GenerateRandomFullName() string {
	return firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
}

// EmailFromName derives a seed-account address like "alice.chen42@domain".
func EmailFromName(fullName, domainName string) string {
	local := strings.ToLower(strings.ReplaceAll(fullName, " ", "."))
	var sb strings.Builder
	sb.WriteString(local)
	for i := 0; i < rand.Intn(3)+1; i++ {
		sb.WriteByte(digits[rand.Intn(len(digits))])
	}
	sb.WriteString("@")
	sb.WriteString(domainName)
	return sb.String()
}
