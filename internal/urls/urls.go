package urls

// Site and social links shown in the footer and the Contact page.

// Website is the public company site.
const Website = "https://orbytrixx.com"

// ContactEmail receives project inquiries.
const ContactEmail = "contact@orbytrixx.com"

// ContactMailto is ContactEmail as a mailto link.
const ContactMailto = "mailto:" + ContactEmail

// GitHub is the company GitHub organization.
const GitHub = "https://github.com/orbytrixx"

// X is the company profile on X.
const X = "https://x.com/orbytrixx"

// Instagram is the company Instagram profile.
const Instagram = "https://www.instagram.com/orbytrixx/"

// Social lists the social links in footer order.
var Social = []Link{
	{Label: "GitHub", URL: GitHub},
	{Label: "X", URL: X},
	{Label: "Instagram", URL: Instagram},
}

// Link is a labelled URL.
type Link struct {
	Label string
	URL   string
}
