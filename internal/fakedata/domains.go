package fakedata

// IdentifierPrefix marks every generated address as synthetic.
const IdentifierPrefix = "fake+"

// Domains is the closed set of mail domains an identifier can end in.
var Domains = [...]string{
	"gmail.com", "yahoo.com", "outlook.com", "hotmail.com",
	"web.de", "gmx.de", "icloud.com", "aol.com",
	"mail.com", "protonmail.com", "t-online.de",
	"example.org", "mydomain.net", "company.co",
	"devmail.io", "techhub.ai", "demoapp.cloud",
	"notarealmail.com", "service-mail.com", "mailbox.org",
	"student.edu", "enterprise.biz", "coolname.app",
	"fastmail.net", "randomcorp.com", "digitalmail.space",
	"testlabs.org", "netbox.tech", "datenpost.de",
}
